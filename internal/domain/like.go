package domain

// LikeCount is one row of the grouped like aggregate. Comments with zero
// likes have no row; absence is a valid zero.
type LikeCount struct {
	CommentId CommentId
	Count     int
}
