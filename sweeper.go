package sweep

import (
	"log/slog"
)

// Sweeper computes arrangements of planar x-monotone curves with a
// Bentley-Ottmann sweep extended to handle vertical segments, three or more
// curves through a common point, curves beginning or ending on the interior
// of another curve, and overlapping curves.
//
// All special cases are handled by use of:
//   - M. de Berg, et al. "Computational Geometry", Chapter 2,
//     DOI: 10.1007/978-3-540-77974-2
//   - J.L. Bentley, T.A. Ottmann, "Algorithms for reporting and counting
//     geometric intersections", IEEE Trans. Comput. C-28, 1979
//
// A sweeper is strictly single-threaded: it owns the event queue, the status
// line, and all events and subcurves for the duration of an operation.
// Independent sweepers may run on different goroutines as long as they share
// no mutable traits state.
type Sweeper[K, C any] struct {
	traits Traits[K, C]

	overlapping      bool
	includeEndPoints bool
	stopAtFirst      bool
	pointsMode       bool
	found            bool

	queue  *eventQueue[C]
	status *statusLine[C]

	subCurves []*SubCurve[C]
	xcurves   []C // owns the x-monotone pieces split off non-monotone input
	curveID   int

	sweepPos Point // the current event point
	prevPos  Point // the last event point at a strictly smaller x
	current  *Event[C]

	miniq             []*Event[C]    // events sharing the current x
	verticals         []*SubCurve[C] // vertical curves at the current x
	verticalSubCurves []C            // vertical pieces emitted at the current x

	insertHint *statusNode[C] // lower neighbour of the next insertion
	tmpOut     []*SubCurve[C] // junction pieces pending emission

	curveOut func(C)
	pointOut func(Point)

	// previous-emission state of the output dedup
	havePrevCurve bool
	prevCurve     C
	firstPoint    bool
	lastPoint     Point

	log *slog.Logger
}

// NewSweeper returns a sweeper that borrows the caller's traits oracle. The
// oracle is used read-only and must not be mutated while a sweep runs.
func NewSweeper[K, C any](traits Traits[K, C]) *Sweeper[K, C] {
	return &Sweeper[K, C]{traits: traits}
}

// NewSegmentSweeper returns a sweeper over polylines and line segments with
// a fresh owned SegmentTraits oracle.
func NewSegmentSweeper() *Sweeper[Polyline, Segment] {
	return NewSweeper[Polyline, Segment](NewSegmentTraits())
}

// Subcurves computes the maximal non-self-intersecting subcurves induced by
// the arrangement of the input curves and passes them to sink in sweep
// order. When overlapping is true, a portion where n input curves coincide
// is emitted once per curve; otherwise it is emitted once in total.
func (s *Sweeper[K, C]) Subcurves(curves []K, sink func(C), overlapping bool) {
	s.reset()
	s.overlapping = overlapping
	s.curveOut = sink
	s.init(curves)
	s.sweep()
}

// IntersectionPoints computes all pairwise intersection points of the input
// curves and passes them to sink in sweep order. When includeEndPoints is
// true, every curve endpoint is reported as well, whether or not another
// curve passes through it. When includeEndPoints is false, only
// intersections interior to at least one curve are reported.
func (s *Sweeper[K, C]) IntersectionPoints(curves []K, sink func(Point), includeEndPoints bool) {
	s.reset()
	s.pointsMode = true
	s.includeEndPoints = includeEndPoints
	s.pointOut = sink
	s.init(curves)
	s.sweep()
}

// Intersects returns true if any two input curves intersect at a point
// interior to at least one of them; curves that only share endpoints do not
// count. The sweep stops at the first intersection found.
func (s *Sweeper[K, C]) Intersects(curves []K) bool {
	s.reset()
	s.pointsMode = true
	s.includeEndPoints = false
	s.stopAtFirst = true
	s.pointOut = func(Point) {}
	s.init(curves)
	s.sweep()
	return s.found
}

// reset restores the sweeper for a fresh operation so that it can be reused.
func (s *Sweeper[K, C]) reset() {
	s.overlapping = false
	s.includeEndPoints = true
	s.stopAtFirst = false
	s.pointsMode = false
	s.found = false
	s.queue = newEventQueue(CurveTraits[C](s.traits))
	s.status = newStatusLine(CurveTraits[C](s.traits))
	s.subCurves = s.subCurves[:0]
	s.xcurves = s.xcurves[:0]
	s.curveID = 0
	s.current = nil
	s.miniq = s.miniq[:0]
	s.verticals = s.verticals[:0]
	s.verticalSubCurves = s.verticalSubCurves[:0]
	s.insertHint = nil
	s.tmpOut = s.tmpOut[:0]
	s.curveOut = nil
	s.pointOut = nil
	s.havePrevCurve = false
	s.firstPoint = true
	s.log = Logger()
}

// init splits the input curves into x-monotone pieces and registers an event
// at each piece endpoint.
func (s *Sweeper[K, C]) init(curves []K) {
	for _, k := range curves {
		pieces := s.traits.MakeXMonotone(k)
		if !s.traits.IsXMonotone(k) {
			s.log.Debug("split input curve", "pieces", len(pieces))
			s.xcurves = append(s.xcurves, pieces...)
		}
		for _, c := range pieces {
			s.initCurve(c)
		}
	}
}

func (s *Sweeper[K, C]) initCurve(c C) {
	sc := newSubCurve(s.curveID, c, CurveTraits[C](s.traits))
	s.curveID++
	s.subCurves = append(s.subCurves, sc)

	for _, p := range [2]Point{s.traits.Source(c), s.traits.Target(c)} {
		e := s.queue.Find(p)
		if e == nil {
			e = newEvent(p, CurveTraits[C](s.traits))
			s.queue.Insert(p, e)
		}
		e.AddCurve(sc)
	}
}

// sweep runs the main loop: pop the leftmost event and run the five
// per-event phases against the status line.
func (s *Sweeper[K, C]) sweep() {
	if s.queue.Empty() {
		return
	}
	s.prevPos = s.queue.Min().point
	s.sweepPos = s.prevPos

	for !s.queue.Empty() {
		node := s.queue.Min()
		p := node.point
		if s.traits.CompareX(s.sweepPos, p) < 0 {
			s.prevPos = s.sweepPos
			s.miniq = s.miniq[:0]
			s.verticals = s.verticals[:0]
			s.verticalSubCurves = s.verticalSubCurves[:0]
		}
		s.sweepPos = p
		s.status.setRef(p)
		s.current = node.event
		s.miniq = append(s.miniq, s.current)
		s.log.Debug("handling event", "point", p.String(),
			"left", s.current.NumLeftCurves(), "right", s.current.NumRightCurves())

		s.handleVerticalCurveBottom()
		s.handleVerticalOverlapCurves()
		s.handleLeftCurves()
		s.queue.Erase(node)
		s.handleVerticalCurveTop()
		s.handleRightCurves()

		if s.stopAtFirst && s.found {
			return
		}
	}
}

// handleVerticalCurveBottom is run when the event is the bottom end of a
// vertical curve: every status line curve crossing the vertical span yields
// an intersection event, and the crossing is recorded on the event at the
// vertical's top end.
func (s *Sweeper[K, C]) handleVerticalCurveBottom() {
	e := s.current
	if !e.HasVerticals() {
		return
	}
	p := e.Point()

	for _, vcurve := range e.Verticals() {
		if vcurve.IsTopEnd(p) {
			continue
		}
		slIter := s.status.LowerBound(vcurve)
		if slIter == nil {
			continue
		}
		topEnd := vcurve.TopEnd()
		topEvent := s.queue.Find(topEnd)
		if topEvent == nil {
			panic("bug: no event at vertical curve top end " + topEnd.String())
		}

		lastCreatedHere := false
		var prevEvent *Event[C]
		for slIter != nil {
			c := slIter.sc
			if c.InRange(topEnd) && s.traits.CompareYAtX(topEnd, c.Curve()) < 0 ||
				c.InRange(p) && 0 < s.traits.CompareYAtX(p, c.Curve()) {
				break // curve is outside the vertical span
			}
			if s.handleVerticalCurveXAtEnd(vcurve, c, topEvent) {
				slIter = slIter.Next()
				continue
			}

			// the curve goes through the interior of the vertical curve
			xp, _, ok := s.traits.NearestIntersectionToRight(vcurve.Curve(), c.Curve(), p)
			if !ok {
				panic("bug: no intersection for a curve crossing a vertical span")
			}
			eq := s.queue.Find(xp)
			if eq == nil {
				eq = newEvent(xp, CurveTraits[C](s.traits))
				eq.AddCurveToLeft(c, s.sweepPos)
				eq.AddCurveToRight(c)
				s.queue.Insert(xp, eq)
				s.log.Debug("new vertical intersection event", "point", xp.String())
				lastCreatedHere = true
			} else if s.pointsMode {
				eq.MarkInternal()
				eq.AddCurve(vcurve)
				eq.AddCurveToLeft(c, c.LeftEnd())
				if 0 < s.traits.CompareX(c.RightEnd(), p) {
					eq.AddCurveToRight(c)
				}
			} else if eq == prevEvent {
				// only update events created while walking this span,
				// which includes overlapping curves
				if lastCreatedHere {
					if !c.IsLeftEnd(xp) {
						eq.AddCurveToLeft(c, s.sweepPos)
					}
					if !c.IsRightEnd(xp) {
						eq.AddCurveToRight(c)
					}
				}
			} else {
				lastCreatedHere = false
			}

			topEvent.AddVerticalXPoint(xp, false)
			prevEvent = eq
			slIter = slIter.Next()
		}
	}
}

// handleVerticalCurveXAtEnd handles a status line curve that passes through
// one of the ends of a vertical curve, and returns true if it does.
func (s *Sweeper[K, C]) handleVerticalCurveXAtEnd(vcurve, curve *SubCurve[C], topEvent *Event[C]) bool {
	topEnd := vcurve.TopEnd()
	if curve.InRange(topEnd) && s.traits.CompareYAtX(topEnd, curve.Curve()) == 0 {
		if s.pointsMode {
			if !curve.IsEndPoint(topEnd) {
				topEvent.MarkInternal()
			}
		} else {
			if !curve.IsLeftEnd(topEnd) {
				topEvent.AddCurveToLeft(curve, s.prevPos)
			}
			if !curve.IsRightEnd(topEnd) {
				topEvent.AddCurveToRight(curve)
			}
		}
		return true
	}

	p := s.current.Point()
	if curve.InRange(p) && s.traits.CompareYAtX(p, curve.Curve()) == 0 {
		if s.pointsMode {
			if !curve.IsEndPoint(p) {
				s.current.MarkInternal()
			}
		} else {
			if !curve.IsLeftEnd(p) {
				s.current.AddCurveToLeft(curve, s.prevPos)
			}
			if !curve.IsRightEnd(p) {
				s.current.AddCurveToRight(curve)
			}
		}
		return true
	}
	return false
}

// handleVerticalOverlapCurves goes through the vertical curves anchored at
// the current x: curves whose top lies below the event point are dropped
// from the working set, and an event interior to a vertical curve marks an
// intersection between two vertical curves. Finally, verticals whose bottom
// end is the event point enter the working set.
func (s *Sweeper[K, C]) handleVerticalOverlapCurves() {
	e := s.current
	if !e.HasVerticals() {
		return
	}
	p := e.Point()

	kept := s.verticals[:0]
	for _, curve := range s.verticals {
		if 0 < s.traits.CompareYAtX(p, curve.Curve()) {
			continue // the sweep has passed the vertical's top end
		}
		if !curve.IsEndPoint(p) {
			topEvent := s.queue.Find(curve.TopEnd())
			if topEvent == nil {
				panic("bug: no event at vertical curve top end " + curve.TopEnd().String())
			}
			topEvent.AddVerticalXPoint(p, true)
			e.MarkInternal()
		}
		kept = append(kept, curve)
	}
	s.verticals = kept

	for _, vcurve := range e.Verticals() {
		if vcurve.IsBottomEnd(p) {
			s.verticals = append(s.verticals, vcurve)
		}
	}
}

// handleLeftCurves emits the pending piece of every subcurve incident on the
// left of the event and removes it from the status line. This is where most
// of the output is produced.
func (s *Sweeper[K, C]) handleLeftCurves() {
	e := s.current
	p := e.Point()

	if s.pointsMode {
		if !e.HasLeftCurves() {
			if s.includeEndPoints || e.IsInternal() {
				s.addPointToOutput(p)
			}
			return
		}
		s.status.setRef(s.prevPos)
		for _, leftCurve := range e.Left() {
			s.removeCurveFromStatusLine(leftCurve)
			s.status.setRef(s.prevPos)
		}
		if s.includeEndPoints || e.IsInternal() {
			s.addPointToOutput(p)
		}
		return
	}

	s.status.setRef(s.prevPos)
	for _, leftCurve := range e.Left() {
		cv := leftCurve.Curve()
		lastPoint := leftCurve.LastPoint()

		if leftCurve.IsSource(p) {
			if !leftCurve.IsTarget(lastPoint) {
				a, _ := s.traits.Split(cv, lastPoint)
				s.addCurveToOutput(a, leftCurve)
			} else {
				s.addCurveToOutput(cv, leftCurve)
			}
		} else if leftCurve.IsTarget(p) {
			if !leftCurve.IsSource(lastPoint) {
				_, b := s.traits.Split(cv, lastPoint)
				s.addCurveToOutput(b, leftCurve)
			} else {
				s.addCurveToOutput(cv, leftCurve)
			}
		} else {
			// the event point is interior: emit the piece between the last
			// point and the event, keep the suffix
			var a, b C
			if leftCurve.IsSource(lastPoint) {
				a, b = s.traits.Split(cv, p)
			} else if leftCurve.IsTarget(lastPoint) {
				b, a = s.traits.Split(cv, p)
			} else if leftCurve.SourceLeftToTarget() {
				a, b = s.traits.Split(leftCurve.LastCurve(), p)
			} else {
				b, a = s.traits.Split(leftCurve.LastCurve(), p)
			}
			s.addCurveToOutput(a, leftCurve)
			leftCurve.setLastPoint(p)
			leftCurve.setLastCurve(b)
		}

		s.removeCurveFromStatusLine(leftCurve)
		s.status.setRef(s.prevPos)
	}
}

// removeCurveFromStatusLine erases the curve. When the curve ends here for
// good its former neighbours become adjacent and are probed for an
// intersection, including their overlap runs.
func (s *Sweeper[K, C]) removeCurveFromStatusLine(leftCurve *SubCurve[C]) {
	n := leftCurve.hint
	if n == nil || n.sc != leftCurve {
		panic("bug: subcurve not in status line")
	}
	s.insertHint = n.Prev()

	if !leftCurve.IsEndPoint(s.current.Point()) {
		// the curve continues to the right and is reinserted shortly
		s.status.Remove(n)
		return
	}

	s.status.setRef(s.prevPos)
	if n != s.status.First() && n != s.status.Last() {
		prev := n.Prev()
		mylist := []*SubCurve[C]{prev.sc}
		for tmp := prev.Prev(); tmp != nil; tmp = tmp.Prev() {
			if !s.doCurvesOverlap(prev.sc, tmp.sc) {
				break
			}
			mylist = append(mylist, tmp.sc)
		}

		next := n.Next()
		s.intersectCurveGroup(next.sc, mylist)
		for tmp := next.Next(); tmp != nil; tmp = tmp.Next() {
			if !s.doCurvesOverlap(next.sc, tmp.sc) {
				break
			}
			s.intersectCurveGroup(tmp.sc, mylist)
		}
	}
	s.status.Remove(n)
}

// handleVerticalCurveTop is run when the event is the top end of a vertical
// curve. The event carries the crossings recorded on the vertical span; the
// vertical curve is sliced at each of them and the pieces are emitted, or
// the distinct crossing points reported.
func (s *Sweeper[K, C]) handleVerticalCurveTop() {
	e := s.current
	if !e.HasVerticals() {
		return
	}
	p := e.Point()

	for _, vcurve := range e.Verticals() {
		if vcurve.IsBottomEnd(p) {
			continue
		}

		// walk the status line upward over the vertical span to catch
		// curves that begin on the vertical curve at this x
		bottom := vcurve.BottomEnd()
		for slIter := s.status.LowerBound(vcurve); slIter != nil; slIter = slIter.Next() {
			c := slIter.sc
			if !(c.InRange(p) && 0 < s.traits.CompareYAtX(p, c.Curve()) &&
				c.InRange(bottom) && s.traits.CompareYAtX(bottom, c.Curve()) < 0) {
				break
			}
			if s.traits.CompareX(c.LeftEnd(), p) == 0 {
				if s.pointsMode {
					e.AddVerticalXPoint(c.LeftEnd(), false)
					if !s.includeEndPoints && !s.isInternalXPoint(c.LeftEnd()) {
						s.addPointToOutput(c.LeftEnd())
					}
				} else {
					e.AddVerticalXPoint(c.LeftEnd(), true)
				}
			}
		}
		if s.pointsMode {
			continue
		}

		// slice the vertical curve at the recorded crossings
		a := vcurve.Curve()
		for _, xp := range e.XPoints() {
			if !vcurve.InRange(xp) {
				continue
			}
			b, c := s.traits.Split(a, xp)
			if vcurve.SourceLeftToTarget() {
				s.addVerticalCurveToOutput(b)
				a = c
			} else {
				s.addVerticalCurveToOutput(c)
				a = b
			}
		}
		s.addVerticalCurveToOutput(a)
	}
}

// isInternalXPoint reports whether the event at p, sharing the current x,
// was classified as an interior intersection. The first query marks the
// event so that a second crossing at the same point counts as internal.
func (s *Sweeper[K, C]) isInternalXPoint(p Point) bool {
	for _, e := range s.miniq {
		if s.traits.PointEqual(p, e.Point()) {
			if e.IsInternal() {
				return true
			}
			e.MarkInternal()
			return false
		}
	}
	panic("bug: vertical crossing point " + p.String() + " has no event at the current x")
}

// insertStatus inserts the curve using the given lower-neighbour hint. A
// curve that is already present, such as one another curve starts on, keeps
// its node.
func (s *Sweeper[K, C]) insertStatus(hint *statusNode[C], sc *SubCurve[C]) *statusNode[C] {
	if sc.hint != nil && sc.hint.sc == sc {
		return sc.hint
	}
	return s.status.InsertAt(hint, sc)
}

// handleRightCurves inserts the subcurves extending rightward from the event
// into the status line and probes for new intersections between them and
// their neighbour groups.
func (s *Sweeper[K, C]) handleRightCurves() {
	e := s.current
	if e.NumRightCurves() == 0 {
		return
	}
	s.status.setRef(s.sweepPos)

	if e.NumRightCurves() == 1 {
		// beginning of a curve
		sc := e.Right()[0]
		slIter := s.insertStatus(s.insertHint, sc)
		s.insertHint = slIter
		if s.status.Len() == 1 {
			return
		}

		var mylist []*SubCurve[C]
		if prev := slIter.Prev(); prev != nil {
			if s.pointsMode && !s.includeEndPoints && s.curveStartsAtCurve(sc, prev.sc) {
				s.addPointToOutput(sc.LeftEnd())
			}
			mylist = append(mylist, prev.sc)
			for tmp := prev.Prev(); tmp != nil; tmp = tmp.Prev() {
				if !s.doCurvesOverlap(prev.sc, tmp.sc) {
					break
				}
				mylist = append(mylist, tmp.sc)
			}
		}
		if next := slIter.Next(); next != nil {
			if s.pointsMode && !s.includeEndPoints && s.curveStartsAtCurve(sc, next.sc) {
				s.addPointToOutput(sc.LeftEnd())
			}
			mylist = append(mylist, next.sc)
			for tmp := next.Next(); tmp != nil; tmp = tmp.Next() {
				if !s.doCurvesOverlap(next.sc, tmp.sc) {
					break
				}
				mylist = append(mylist, tmp.sc)
			}
		}
		s.probeGroup(sc, mylist, false)
		return
	}

	// an intersection point with multiple curves continuing rightward
	if e.NumLeftCurves() == 0 {
		// the curves may begin on the interior of a curve in the status
		// line; split that curve here
		for _, cur := range e.Right() {
			slIter := s.status.LowerBound(cur)
			if slIter == nil {
				continue
			}
			c := slIter.sc
			if s.pointsMode {
				if !s.includeEndPoints && s.curveStartsAtCurve(cur, c) {
					s.addPointToOutput(cur.LeftEnd())
					break
				}
			} else if s.curveStartsAtCurve(cur, c) {
				e.AddCurveToLeft(c, s.sweepPos)
				e.AddCurveToRight(c)
				var a, b C
				if c.SourceLeftToTarget() {
					a, b = s.traits.Split(c.LastCurve(), e.Point())
				} else {
					b, a = s.traits.Split(c.LastCurve(), e.Point())
				}
				c.setLastPoint(e.Point())
				c.setLastCurve(b)
				s.addCurveToOutput(a, c)
				break
			}
		}
	}

	right := e.Right() // may have grown above
	firstOne := right[0]
	slIter := s.insertStatus(s.insertHint, firstOne)

	if prev := slIter.Prev(); prev != nil {
		if s.pointsMode && !s.includeEndPoints && s.curveStartsAtCurve(slIter.sc, prev.sc) {
			s.addPointToOutput(slIter.sc.LeftEnd())
		}
		prevlist := []*SubCurve[C]{prev.sc}
		for tmp := prev.Prev(); tmp != nil; tmp = tmp.Prev() {
			if !s.doCurvesOverlap(prev.sc, tmp.sc) {
				break
			}
			prevlist = append(prevlist, tmp.sc)
		}
		s.probeGroup(slIter.sc, prevlist, false)
	}

	var prevlist []*SubCurve[C]
	currentlist := []*SubCurve[C]{firstOne}
	prevOne := firstOne
	for _, currentOne := range right[1:] {
		s.status.setRef(s.sweepPos)
		slIter = s.insertStatus(slIter, currentOne)
		if s.doCurvesOverlap(currentOne, prevOne) {
			s.probeGroup(currentOne, currentlist, false)
			currentlist = append(currentlist, currentOne)
		} else {
			prevlist = currentlist
			currentlist = []*SubCurve[C]{currentOne}
		}
		s.probeGroup(currentOne, prevlist, false)
		prevOne = currentOne
	}
	s.insertHint = slIter

	if next := slIter.Next(); next != nil {
		if s.pointsMode && !s.includeEndPoints && s.curveStartsAtCurve(slIter.sc, next.sc) {
			s.addPointToOutput(slIter.sc.LeftEnd())
		}
		s.probeGroup(next.sc, currentlist, true)
		for tmp := next.Next(); tmp != nil; tmp = tmp.Next() {
			if !s.doCurvesOverlap(next.sc, tmp.sc) {
				break
			}
			s.probeGroup(tmp.sc, currentlist, true)
		}
	}
}

// probeGroup probes c1 against a neighbour group; in points mode without
// the subcurve-emitting junction handling.
func (s *Sweeper[K, C]) probeGroup(c1 *SubCurve[C], group []*SubCurve[C], reverse bool) {
	if s.pointsMode {
		s.intersectCurveGroup(c1, group)
	} else {
		s.intersectCurveGroupOut(c1, group, reverse)
	}
}

// intersectCurveGroup probes c1 against every curve in the group.
func (s *Sweeper[K, C]) intersectCurveGroup(c1 *SubCurve[C], group []*SubCurve[C]) {
	for _, c2 := range group {
		s.intersect(c1, c2)
	}
}

// intersectCurveGroupOut probes c1 against every curve in the group and
// additionally detects curves starting at the interior of another curve.
// With reverse false it checks whether c1 starts at a curve of the group;
// with reverse true whether a curve of the group starts at c1. The host
// curve is split at the junction and its left piece emitted.
func (s *Sweeper[K, C]) intersectCurveGroupOut(c1 *SubCurve[C], group []*SubCurve[C], reverse bool) {
	s.tmpOut = s.tmpOut[:0]
	p := s.current.Point()
	for _, c2 := range group {
		host, starter := c2, c1
		if reverse {
			host, starter = c1, c2
		}
		if s.curveStartsAtCurve(starter, host) && !s.traits.PointEqual(host.LastPoint(), p) {
			s.current.AddCurveToRight(host)
			s.current.AddCurveToLeft(host, s.prevPos)
			var a, b C
			if host.SourceLeftToTarget() {
				a, b = s.traits.Split(host.LastCurve(), p)
			} else {
				b, a = s.traits.Split(host.LastCurve(), p)
			}
			host.setLastPoint(p)
			host.setLastCurve(b)
			host.setLastSub(a)
			s.tmpOut = append(s.tmpOut, host)
		}

		s.intersect(c1, c2)
	}

	for _, sc := range s.tmpOut {
		s.addCurveToOutput(sc.lastSub, sc)
	}
	s.tmpOut = s.tmpOut[:0]
}

// curveStartsAtCurve returns true if one's left end is the current event
// point and lies on the interior of two: a T-junction.
func (s *Sweeper[K, C]) curveStartsAtCurve(one, two *SubCurve[C]) bool {
	if s.traits.PointEqual(one.LeftEnd(), two.LeftEnd()) {
		return false
	}
	if !s.traits.PointEqual(one.LeftEnd(), s.current.Point()) {
		return false
	}
	return two.InRange(one.LeftEnd()) && s.traits.CompareYAtX(one.LeftEnd(), two.Curve()) == 0
}

// doCurvesOverlap returns true if both curves pass through the sweep
// position and coincide on a positive-length portion.
func (s *Sweeper[K, C]) doCurvesOverlap(c1, c2 *SubCurve[C]) bool {
	if s.traits.CurvesCompareYAtX(c1.Curve(), c2.Curve(), s.sweepPos) != 0 {
		return false
	}
	return s.traits.Overlap(c1.Curve(), c2.Curve())
}

// intersect asks the oracle for the nearest intersection of the two curves
// strictly right of the current event and inserts or amends the event there.
// Returns true if the curves overlap.
func (s *Sweeper[K, C]) intersect(c1, c2 *SubCurve[C]) bool {
	if c1.ID() == c2.ID() {
		return false
	}

	cv1, cv2 := c1.Curve(), c2.Curve()
	xp, xp1, ok := s.traits.NearestIntersectionToRight(cv1, cv2, s.current.Point())
	if !ok {
		return false
	}

	isOverlap := false
	if !s.traits.PointEqual(xp, xp1) {
		if 0 < s.traits.CompareX(xp1, xp) {
			xp = xp1 // queue the overlap's rightmost endpoint
		}
		isOverlap = true
	}

	e := s.queue.Find(xp)
	if e == nil {
		e = newEvent(xp, CurveTraits[C](s.traits))
		e.AddCurveToLeft(c1, s.sweepPos)
		e.AddCurveToLeft(c2, s.sweepPos)
		e.AddCurveToRight(c1)
		e.AddCurveToRight(c2)
		s.queue.Insert(xp, e)
		s.log.Debug("new intersection event", "point", xp.String())
		return isOverlap
	}
	if !c1.IsEndPoint(xp) {
		e.AddCurveToLeft(c1, s.sweepPos)
		e.AddCurveToRight(c1)
	}
	if !c2.IsEndPoint(xp) {
		e.AddCurveToLeft(c2, s.sweepPos)
		e.AddCurveToRight(c2)
	}
	return isOverlap
}

// addCurveToOutput emits a subcurve piece. Unless overlapping emission is
// requested, a piece equal to the previously emitted one is suppressed.
func (s *Sweeper[K, C]) addCurveToOutput(cv C, sc *SubCurve[C]) {
	if !s.overlapping {
		if s.havePrevCurve && s.traits.CurveEqual(cv, s.prevCurve) {
			s.log.Debug("suppressing duplicate subcurve")
			return
		}
		s.havePrevCurve = true
		s.prevCurve = cv
	}
	s.curveOut(cv)
}

// addVerticalCurveToOutput emits a vertical piece. Unless overlapping
// emission is requested, it is deduplicated against the vertical pieces
// already emitted at this x.
func (s *Sweeper[K, C]) addVerticalCurveToOutput(cv C) {
	if !s.overlapping {
		for _, o := range s.verticalSubCurves {
			if s.traits.CurveEqual(o, cv) {
				s.log.Debug("suppressing duplicate vertical subcurve")
				return
			}
		}
		s.verticalSubCurves = append(s.verticalSubCurves, cv)
	}
	s.curveOut(cv)
}

// addPointToOutput reports an intersection point; the first report is
// unconditional, thereafter a point equal to the last one is suppressed.
func (s *Sweeper[K, C]) addPointToOutput(p Point) {
	if !s.firstPoint && s.traits.PointEqual(s.lastPoint, p) {
		return
	}
	s.firstPoint = false
	s.lastPoint = p
	s.found = true
	s.pointOut(p)
}
