package sweep

import (
	"testing"

	"github.com/tdewolff/test"
)

func newTestStatus(cs ...Segment) (*statusLine[Segment], []*SubCurve[Segment]) {
	traits := NewSegmentTraits()
	s := newStatusLine[Segment](traits)
	scs := make([]*SubCurve[Segment], len(cs))
	for i, c := range cs {
		scs[i] = newSubCurve(i, c, traits)
	}
	return s, scs
}

func statusOrder(s *statusLine[Segment]) []int {
	var ids []int
	for n := s.First(); n != nil; n = n.Next() {
		ids = append(ids, n.sc.ID())
	}
	return ids
}

func TestStatusLineOrder(t *testing.T) {
	s, scs := newTestStatus(
		seg(0, 4, 10, 4),
		seg(0, 0, 10, 0),
		seg(0, 8, 10, 8),
		seg(0, 2, 10, 2),
		seg(0, 6, 10, 6),
	)
	s.setRef(Point{0, 0})
	for _, sc := range scs {
		s.Insert(sc)
	}
	test.T(t, s.Len(), 5)
	test.T(t, statusOrder(s), []int{1, 3, 0, 4, 2})

	// iterate backwards
	var ids []int
	for n := s.Last(); n != nil; n = n.Prev() {
		ids = append(ids, n.sc.ID())
	}
	test.T(t, ids, []int{2, 4, 0, 3, 1})
}

func TestStatusLineLowerBound(t *testing.T) {
	s, scs := newTestStatus(
		seg(0, 0, 10, 0),
		seg(0, 4, 10, 4),
		seg(0, 8, 10, 8),
		seg(5, 2, 5, 6), // vertical probe, not inserted
	)
	s.setRef(Point{0, 0})
	for _, sc := range scs[:3] {
		s.Insert(sc)
	}

	n := s.LowerBound(scs[3])
	test.T(t, n.sc.ID(), 1) // first curve not below the vertical's bottom end

	// a probe above all curves
	_, probe := newTestStatus(seg(5, 9, 5, 12))
	test.That(t, s.LowerBound(probe[0]) == nil)
}

func TestStatusLineRemove(t *testing.T) {
	s, scs := newTestStatus(
		seg(0, 0, 10, 0),
		seg(0, 2, 10, 2),
		seg(0, 4, 10, 4),
		seg(0, 6, 10, 6),
	)
	s.setRef(Point{0, 0})
	for _, sc := range scs {
		s.Insert(sc)
	}
	test.That(t, scs[1].hint != nil)

	s.Remove(scs[1].hint)
	test.T(t, statusOrder(s), []int{0, 2, 3})
	test.That(t, scs[1].hint == nil)

	// hints of the remaining curves stay valid
	for _, i := range []int{0, 2, 3} {
		test.T(t, scs[i].hint.sc.ID(), i)
	}

	s.Remove(scs[0].hint)
	s.Remove(scs[3].hint)
	test.T(t, statusOrder(s), []int{2})
	s.Remove(scs[2].hint)
	test.T(t, s.Len(), 0)
	test.That(t, s.First() == nil)
}

func TestStatusLineInsertAt(t *testing.T) {
	s, scs := newTestStatus(
		seg(0, 0, 10, 0),
		seg(0, 4, 10, 4),
		seg(0, 2, 10, 2),
		seg(0, 6, 10, 6),
	)
	s.setRef(Point{0, 0})
	n0 := s.Insert(scs[0])
	s.Insert(scs[1])

	// valid hint: scs[2] belongs right above scs[0]
	s.InsertAt(n0, scs[2])
	test.T(t, statusOrder(s), []int{0, 2, 1})

	// invalid hint falls back to a regular insertion
	s.InsertAt(n0, scs[3])
	test.T(t, statusOrder(s), []int{0, 2, 1, 3})

	// nil hint
	_, more := newTestStatus(seg(0, 8, 10, 8))
	s.InsertAt(nil, more[0])
	test.T(t, s.Len(), 5)
}

func TestStatusLineOverlapCoexistence(t *testing.T) {
	// coincident curves compare equal geometrically but coexist through
	// their stable identifiers
	s, scs := newTestStatus(
		seg(0, 0, 10, 0),
		seg(0, 0, 10, 0),
		seg(0, 0, 10, 0),
	)
	s.setRef(Point{0, 0})
	for _, sc := range scs {
		s.Insert(sc)
	}
	test.T(t, statusOrder(s), []int{0, 1, 2})
}

func TestStatusLineManyInsertions(t *testing.T) {
	traits := NewSegmentTraits()
	s := newStatusLine[Segment](traits)
	s.setRef(Point{0, 0})

	// insert in a shuffled but fixed order to exercise the rotations
	n := 100
	var scs []*SubCurve[Segment]
	for i := 0; i < n; i++ {
		y := float64((i*37)%n) * 1.0
		scs = append(scs, newSubCurve(i, seg(0, y, 10, y), traits))
	}
	for _, sc := range scs {
		s.Insert(sc)
	}
	test.T(t, s.Len(), n)

	prev := -1.0
	cnt := 0
	for node := s.First(); node != nil; node = node.Next() {
		y := node.sc.Curve().A.Y
		test.That(t, prev < y)
		prev = y
		cnt++
	}
	test.T(t, cnt, n)

	for _, sc := range scs {
		s.Remove(sc.hint)
	}
	test.T(t, s.Len(), 0)
}

func TestQueueOrderAndDedup(t *testing.T) {
	traits := NewSegmentTraits()
	q := newEventQueue[Segment](traits)
	test.That(t, q.Empty())

	points := []Point{{5, 5}, {0, 0}, {5, 0}, {0, 10}, {10, 0}, {5, 10}}
	for _, p := range points {
		test.That(t, q.Find(p) == nil)
		q.Insert(p, newEvent(p, CurveTraits[Segment](traits)))
	}
	test.T(t, q.Len(), 6)

	// find returns the queued event
	for _, p := range points {
		e := q.Find(p)
		test.That(t, e != nil)
		test.T(t, e.Point(), p)
	}

	// pop in sweep order: x increasing, then y increasing
	want := []Point{{0, 0}, {0, 10}, {5, 0}, {5, 5}, {5, 10}, {10, 0}}
	var got []Point
	for !q.Empty() {
		n := q.Min()
		got = append(got, n.point)
		q.Erase(n)
	}
	test.T(t, got, want)
}

func TestQueueManyInsertions(t *testing.T) {
	traits := NewSegmentTraits()
	q := newEventQueue[Segment](traits)
	n := 200
	for i := 0; i < n; i++ {
		p := Point{float64((i * 73) % n), float64(i % 7)}
		if q.Find(p) == nil {
			q.Insert(p, newEvent(p, CurveTraits[Segment](traits)))
		}
	}
	var prev Point
	first := true
	cnt := 0
	for !q.Empty() {
		node := q.Min()
		if !first {
			test.That(t, cmpPoints(prev, node.point) < 0)
		}
		prev = node.point
		first = false
		cnt++
		q.Erase(node)
	}
	test.T(t, cnt, n)
}
