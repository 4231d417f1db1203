package rng

// normalTableSize is the number of entries in normalTable; the last entry
// sits at four standard deviations.
const normalTableSize = 256

// normalTableSD is the standard deviation, in table steps, the table was
// built with.
const normalTableSD = 64

// normalTable holds the cumulative probability that |X| falls within
// (i+0.5)/normalTableSD standard deviations, scaled to maxShort.
var normalTable = [normalTableSize]int{
	204, 613, 1021, 1429, 1837, 2244, 2651, 3057,
	3462, 3867, 4270, 4673, 5074, 5474, 5873, 6271,
	6667, 7061, 7454, 7845, 8234, 8621, 9006, 9389,
	9769, 10148, 10524, 10898, 11269, 11638, 12004, 12367,
	12728, 13085, 13440, 13792, 14141, 14486, 14829, 15168,
	15504, 15837, 16166, 16492, 16815, 17134, 17449, 17761,
	18069, 18374, 18675, 18973, 19266, 19556, 19842, 20125,
	20403, 20678, 20949, 21216, 21479, 21739, 21994, 22246,
	22494, 22738, 22978, 23214, 23446, 23675, 23899, 24120,
	24337, 24550, 24760, 24965, 25167, 25365, 25559, 25750,
	25937, 26121, 26300, 26477, 26649, 26818, 26984, 27146,
	27305, 27460, 27612, 27761, 27906, 28048, 28187, 28323,
	28456, 28585, 28712, 28835, 28956, 29073, 29188, 29300,
	29409, 29515, 29619, 29720, 29818, 29914, 30007, 30098,
	30187, 30273, 30356, 30437, 30516, 30593, 30668, 30740,
	30811, 30879, 30946, 31010, 31073, 31133, 31192, 31249,
	31304, 31358, 31410, 31460, 31509, 31556, 31602, 31646,
	31689, 31730, 31770, 31809, 31846, 31882, 31917, 31950,
	31983, 32014, 32045, 32074, 32102, 32129, 32155, 32181,
	32205, 32228, 32251, 32273, 32294, 32314, 32333, 32352,
	32370, 32387, 32404, 32420, 32435, 32450, 32464, 32477,
	32491, 32503, 32515, 32527, 32538, 32548, 32558, 32568,
	32577, 32586, 32595, 32603, 32611, 32618, 32625, 32632,
	32639, 32645, 32651, 32657, 32662, 32667, 32672, 32677,
	32682, 32686, 32690, 32694, 32698, 32702, 32705, 32708,
	32711, 32714, 32717, 32720, 32722, 32725, 32727, 32729,
	32731, 32733, 32735, 32737, 32739, 32740, 32742, 32743,
	32744, 32746, 32747, 32748, 32749, 32750, 32751, 32752,
	32753, 32754, 32755, 32756, 32756, 32757, 32758, 32758,
	32759, 32759, 32760, 32760, 32761, 32761, 32762, 32762,
	32762, 32763, 32763, 32763, 32764, 32764, 32764, 32764,
	32765, 32765, 32765, 32765, 32765, 32766, 32766, 32766,
}
