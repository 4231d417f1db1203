package systems

import "moria-kernel/internal/domain"

// LineOfSight reports whether a line can be traced from the centre of
// (fromY, fromX) to the centre of (toY, toX) without crossing a closed cell.
// The endpoints themselves are never tested.
//
// The walk runs along the longer axis with a fractional accumulator scaled
// by 2*|dx*dy|, so everything stays in integers. A cell the line enters
// through its side is tested; when the line passes exactly through a corner
// both cells sharing that corner must be open.
//
// Callers must keep |toX-fromX| and |toY-fromY| at or below 90; the scaled
// accumulator was sized for that range.
func LineOfSight(cave *domain.Cave, fromY, fromX, toY, toX int) bool {
	deltaX := toX - fromX
	deltaY := toY - fromY

	if deltaX < 2 && deltaX > -2 && deltaY < 2 && deltaY > -2 {
		return true
	}

	if deltaX == 0 {
		if deltaY < 0 {
			fromY, toY = toY, fromY
		}
		for y := fromY + 1; y < toY; y++ {
			if cave.At(y, fromX).Closed() {
				return false
			}
		}
		return true
	}

	if deltaY == 0 {
		if deltaX < 0 {
			fromX, toX = toX, fromX
		}
		for x := fromX + 1; x < toX; x++ {
			if cave.At(fromY, x).Closed() {
				return false
			}
		}
		return true
	}

	scaleHalf := abs(deltaX * deltaY)
	scale := scaleHalf << 1
	xSign := sign(deltaX)
	ySign := sign(deltaY)

	if abs(deltaX) >= abs(deltaY) {
		return walk(cave, fromY, fromX, toX, ySign, xSign, deltaY*deltaY, scaleHalf, scale, false)
	}
	return walk(cave, fromX, fromY, toY, xSign, ySign, deltaX*deltaX, scaleHalf, scale, true)
}

// walk steps along the major axis from major+majorSign up to end. minor is
// the position on the other axis, frac its scaled fractional offset. With
// transposed set the major axis is y and cells are read as (major, minor).
func walk(cave *domain.Cave, minor, major, end, minorSign, majorSign, frac, scaleHalf, scale int, transposed bool) bool {
	closed := func(mi, ma int) bool {
		if transposed {
			return cave.At(ma, mi).Closed()
		}
		return cave.At(mi, ma).Closed()
	}

	slope := frac << 1
	ma := major + majorSign
	mi := minor

	// exactly 45 degrees: the first step already crosses a corner
	if frac == scaleHalf {
		if closed(minor+minorSign, major) || closed(minor, major+majorSign) {
			return false
		}
		mi += minorSign
		frac -= scale
	}

	for ma != end {
		if closed(mi, ma) {
			return false
		}

		frac += slope

		switch {
		case frac < scaleHalf:
			ma += majorSign
		case frac > scaleHalf:
			mi += minorSign
			if closed(mi, ma) {
				return false
			}
			ma += majorSign
			frac -= scale
		default:
			if closed(mi+minorSign, ma) || closed(mi, ma+majorSign) {
				return false
			}
			ma += majorSign
			mi += minorSign
			frac -= scale
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
