package snake

import "fmt"

// Snake tracks only its two endpoints. The body lives in the field:
// starting at the tail and following each segment's direction leads to the head.
type Snake struct {
	Head Location
	Tail Location
}

// HeadDirection returns the direction stored in the head cell.
func (s Snake) HeadDirection(f *Field) Direction {
	return s.cellDirection(s.Head, f, "head")
}

// TailDirection returns the direction stored in the tail cell.
func (s Snake) TailDirection(f *Field) Direction {
	return s.cellDirection(s.Tail, f, "tail")
}

func (s Snake) cellDirection(loc Location, f *Field, end string) Direction {
	cell := f.GetAt(loc)
	if !cell.IsSnake() {
		panic(fmt.Sprintf("snake: %s at %v holds %s cell", end, loc, cell.Kind))
	}
	return cell.Dir
}

// Body returns every segment location from tail to head.
func (s Snake) Body(f *Field) []Location {
	size := f.Size()
	body := []Location{s.Tail}

	loc := s.Tail
	for loc != s.Head {
		if len(body) > size.Area() {
			panic(fmt.Sprintf("snake: body from %v never reaches head %v", s.Tail, s.Head))
		}
		cell := f.GetAt(loc)
		if !cell.IsSnake() {
			panic(fmt.Sprintf("snake: body broken at %v (%s cell)", loc, cell.Kind))
		}
		loc = cell.Dir.Next(loc, size)
		body = append(body, loc)
	}

	if !f.GetAt(s.Head).IsSnake() {
		panic(fmt.Sprintf("snake: head at %v is not a snake cell", s.Head))
	}
	return body
}

// Len returns the number of segments.
func (s Snake) Len(f *Field) int {
	return len(s.Body(f))
}
