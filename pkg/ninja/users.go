package ninja

import "strconv"

// DecodeUserIDs expands a delta encoded id column: the first element is an
// absolute user id and each following element is added to the previous id.
// [0, 1, 5, 22, 100] decodes to [0, 1, 6, 28, 128].
func DecodeUserIDs(encoded []int) []int {
	if len(encoded) == 0 {
		return nil
	}
	out := make([]int, len(encoded))
	id := 0
	for i, v := range encoded {
		id += v
		out[i] = id
	}
	return out
}

// UsersOf returns the user ids listed under position index of a *Use map,
// e.g. UsersOf(resp.UniqueItemUse, 3) for the users of resp.UniqueItems[3].
func UsersOf(use map[string][]int, index int) []int {
	return DecodeUserIDs(use[strconv.Itoa(index)])
}

// Character identifies a ladder entry by user id.
type Character struct {
	Account string
	Name    string
	Level   int
	Class   string
}

// CharacterAt resolves a user id of a build overview into its ladder entry.
func (b BuildsResponse) CharacterAt(id int) (Character, bool) {
	if id < 0 || id >= len(b.Names) {
		return Character{}, false
	}
	c := Character{Name: b.Names[id]}
	if id < len(b.Accounts) {
		c.Account = b.Accounts[id]
	}
	if id < len(b.Levels) {
		c.Level = b.Levels[id]
	}
	if id < len(b.Classes) {
		if cls := b.Classes[id]; cls >= 0 && cls < len(b.ClassNames) {
			c.Class = b.ClassNames[cls]
		}
	}
	return c, true
}
