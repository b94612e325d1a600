package game

// Direction reports which way the guess has to move to reach the target:
// up when the target is higher, down when it is lower. Equal values yield
// DirEqual, which the comparator only produces for differently spelled
// numbers such as "07" and "7".
func Direction(guess, target int64) Dir {
	switch {
	case guess < target:
		return DirUp
	case guess > target:
		return DirDown
	default:
		return DirEqual
	}
}
