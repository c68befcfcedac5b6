package parse

// Keywords with meaning to the renderer.
const (
	KeywordIf     = "if"
	KeywordElseif = "elseif"
	KeywordElse   = "else"
	KeywordEach   = "each"
	KeywordWith   = "with"
	KeywordAs     = "as"
)

// IsBlock reports whether head opens a block.
func IsBlock(head string) bool {
	switch head {
	case KeywordIf, KeywordEach, KeywordWith:
		return true
	}
	return false
}

// FindClose returns the index of the tag that closes the block opened at
// segs[open], or -1 if the block is never closed.  Blocks of the same keyword
// nest: each further opener must be closed before the original one is.
func FindClose(segs Segments, open int) int {
	var (
		keyword = segs[open].Head()
		closer  = "/" + keyword
		depth   = 1
	)
	for i := open + 2; i < len(segs); i += 2 {
		switch segs[i].Head() {
		case keyword:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Branch is one arm of an if block.
type Branch struct {
	Cond []string // condition tokens
	Else bool     // an else arm, taken unconditionally
	Body Segments
}

// Branches partitions the body of an if block on its elseif and else tags.
// Tags belonging to if blocks nested inside the body are left in place.
func Branches(cond []string, body Segments) []Branch {
	var (
		branches []Branch
		isElse   = false
		depth    = 0
		start    = 0
	)
	for i := 1; i < len(body); i += 2 {
		var fields = body[i].Fields()
		switch fields[0] {
		case KeywordIf:
			depth++
		case "/" + KeywordIf:
			depth--
		case KeywordElseif, KeywordElse:
			if depth != 0 {
				continue
			}
			branches = append(branches, Branch{cond, isElse, body[start:i]})
			cond, isElse = fields[1:], fields[0] == KeywordElse
			start = i + 1
		}
	}
	return append(branches, Branch{cond, isElse, body[start:]})
}

// Alias splits the arguments of a with block at "as", returning the
// expression and the name it is bound to.  ok is false if there is no alias.
func Alias(args []string) (expr []string, alias string, ok bool) {
	for i, arg := range args {
		if arg == KeywordAs && i+1 < len(args) {
			return args[:i], args[i+1], true
		}
	}
	return args, "", false
}
