package sweep

// Event is a point at which the status line changes: a curve endpoint, a
// pairwise intersection, or a vertical-crossing point. It owns the ordered
// lists of subcurves incident on its left and right and the vertical-curve
// state needed by the vertical phases. Events hold non-owning references to
// subcurves; both are owned by the Sweeper.
type Event[C any] struct {
	point  Point
	traits CurveTraits[C]

	left  []*SubCurve[C] // ends or passes through, ordered bottom to top
	right []*SubCurve[C] // extends rightward, ordered bottom to top

	verticals []*SubCurve[C] // vertical curves anchored at this point's x
	xpoints   []Point        // crossings on the vertical span, ordered bottom to top
	internal  bool           // interior intersection of two curves

	// Data carries caller state for consumers that build arrangements on
	// top of the sweep. The engine never touches it.
	Data any
}

func newEvent[C any](p Point, traits CurveTraits[C]) *Event[C] {
	return &Event[C]{point: p, traits: traits}
}

// Point returns the event point.
func (e *Event[C]) Point() Point {
	return e.point
}

// cmpCurves orders two subcurves by their vertical position at ref, breaking
// ties by the order immediately to the right.
func (e *Event[C]) cmpCurves(a, b *SubCurve[C], ref Point) int {
	cmp := e.traits.CurvesCompareYAtX(a.Curve(), b.Curve(), ref)
	if cmp == 0 {
		cmp = e.traits.CurvesCompareYAtXRight(a.Curve(), b.Curve(), ref)
	}
	return cmp
}

func insertCurve[C any](list []*SubCurve[C], sc *SubCurve[C], cmp func(a, b *SubCurve[C]) int) []*SubCurve[C] {
	for _, o := range list {
		if o == sc {
			return list
		}
	}
	i := 0
	for i < len(list) && cmp(list[i], sc) <= 0 {
		i++
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = sc
	return list
}

// AddCurveToLeft inserts sc into the left list, keeping ascending vertical
// order along the sweep at ref. The reference is a just-prior sweep position
// so that curves coinciding at the event still order correctly. An event
// interior to the curve is an interior intersection point.
func (e *Event[C]) AddCurveToLeft(sc *SubCurve[C], ref Point) {
	if !sc.IsEndPoint(e.point) {
		e.internal = true
	}
	e.left = insertCurve(e.left, sc, func(a, b *SubCurve[C]) int {
		return e.cmpCurves(a, b, ref)
	})
}

// AddCurveToRight inserts sc into the right list, keeping ascending vertical
// order immediately to the right of the event point.
func (e *Event[C]) AddCurveToRight(sc *SubCurve[C]) {
	e.right = insertCurve(e.right, sc, func(a, b *SubCurve[C]) int {
		return e.cmpCurves(a, b, e.point)
	})
}

// AddCurve registers an endpoint curve: vertical curves go to the vertical
// list, others to the right list if the event is their left end and to the
// left list otherwise.
func (e *Event[C]) AddCurve(sc *SubCurve[C]) {
	if sc.IsVertical() {
		for _, o := range e.verticals {
			if o == sc {
				return
			}
		}
		e.verticals = append(e.verticals, sc)
	} else if sc.IsLeftEnd(e.point) {
		e.AddCurveToRight(sc)
	} else {
		e.AddCurveToLeft(sc, e.point)
	}
}

// AddVerticalXPoint records that a curve crosses a vertical curve anchored
// at this event at p, keeping the list ordered bottom to top without
// duplicates. Endpoint crossings are recorded as well.
func (e *Event[C]) AddVerticalXPoint(p Point, isEndPoint bool) {
	i := 0
	for i < len(e.xpoints) {
		cmp := e.traits.ComparePoints(e.xpoints[i], p)
		if cmp == 0 {
			return
		} else if 0 < cmp {
			break
		}
		i++
	}
	e.xpoints = append(e.xpoints, Point{})
	copy(e.xpoints[i+1:], e.xpoints[i:])
	e.xpoints[i] = p
}

// XPoints returns the recorded crossings on the vertical span, bottom to top.
func (e *Event[C]) XPoints() []Point {
	return e.xpoints
}

// MarkInternal classifies this event as an interior intersection point.
func (e *Event[C]) MarkInternal() {
	e.internal = true
}

// IsInternal returns true if this event is an interior intersection point.
func (e *Event[C]) IsInternal() bool {
	return e.internal
}

// HasVerticals returns true if a vertical curve is anchored at this event.
func (e *Event[C]) HasVerticals() bool {
	return 0 < len(e.verticals)
}

// Verticals returns the vertical curves anchored at this event.
func (e *Event[C]) Verticals() []*SubCurve[C] {
	return e.verticals
}

// HasLeftCurves returns true if any subcurve ends or passes through here
// from the left.
func (e *Event[C]) HasLeftCurves() bool {
	return 0 < len(e.left)
}

// Left returns the left-incident subcurves, bottom to top.
func (e *Event[C]) Left() []*SubCurve[C] {
	return e.left
}

// Right returns the right-extending subcurves, bottom to top.
func (e *Event[C]) Right() []*SubCurve[C] {
	return e.right
}

func (e *Event[C]) NumLeftCurves() int {
	return len(e.left)
}

func (e *Event[C]) NumRightCurves() int {
	return len(e.right)
}
