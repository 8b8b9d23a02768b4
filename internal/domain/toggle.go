package domain

// ToggleSquare flips the mark of the square with the given id. Unknown ids
// and the free square leave the input untouched.
func ToggleSquare(squares []Square, id int) []Square {
	index := -1
	for i, square := range squares {
		if square.ID == id {
			index = i
			break
		}
	}
	if index < 0 || squares[index].IsFreeSpace {
		return squares
	}

	toggled := make([]Square, len(squares))
	copy(toggled, squares)
	toggled[index].IsMarked = !toggled[index].IsMarked

	return toggled
}
