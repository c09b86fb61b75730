package game

// RoomSize is the number of face-up positions in a room.
const RoomSize = 4

// Room holds four positions, each empty (nil) or holding one card.
// Positions are never compacted: an emptied slot stays where it is until
// it is refilled from the deck.
type Room [RoomSize]*Card

// Fill puts the next deck card into every empty position, left to right,
// stopping quietly once the deck runs out.
func (r *Room) Fill(d *Deck) {
	for i := range r {
		if r[i] != nil {
			continue
		}
		c, ok := d.Draw()
		if !ok {
			return
		}
		r[i] = &c
	}
}

// Take empties position i and returns what it held.
func (r *Room) Take(i int) (Card, bool) {
	if i < 0 || i >= RoomSize || r[i] == nil {
		return Card{}, false
	}
	c := *r[i]
	r[i] = nil
	return c, true
}

// At reports the card in position i without removing it.
func (r Room) At(i int) (Card, bool) {
	if i < 0 || i >= RoomSize || r[i] == nil {
		return Card{}, false
	}
	return *r[i], true
}

// Empty reports whether every position is empty.
func (r Room) Empty() bool {
	for _, c := range r {
		if c != nil {
			return false
		}
	}
	return true
}

// Cards returns the occupied positions' cards, left to right.
func (r Room) Cards() []Card {
	out := make([]Card, 0, RoomSize)
	for _, c := range r {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Count is the number of occupied positions.
func (r Room) Count() int {
	n := 0
	for _, c := range r {
		if c != nil {
			n++
		}
	}
	return n
}
