package pgn

import "github.com/navanchauhan/gochess/board"

// Result is the outcome marker terminating a line of movetext.
type Result int

const (
	ResultNone Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
	ResultUndecided
)

func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "1-0"
	case ResultBlackWins:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	case ResultUndecided:
		return "*"
	default:
		return ""
	}
}

func parseResult(s string) Result {
	switch s {
	case "1-0":
		return ResultWhiteWins
	case "0-1":
		return ResultBlackWins
	case "1/2-1/2":
		return ResultDraw
	case "*":
		return ResultUndecided
	default:
		return ResultNone
	}
}

// DiagnosticLevel classifies a non-fatal parse problem, per spec.md §4.6.
type DiagnosticLevel int

const (
	Warning DiagnosticLevel = iota
	Error
)

func (l DiagnosticLevel) String() string {
	if l == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a non-fatal problem collected while parsing movetext,
// grounded on lgbarn-pgn-extract-go/internal/errors.ParseError's
// line/column-carrying shape, but returned as a value alongside the tree
// rather than raised, per spec.md §4.6.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	Line    int
	Column  int
}

// Move is one movetext node: a resolved move plus its attached
// annotations and any variations branching from it, per spec.md §3
// PGN.Move.
type Move struct {
	Number         uint16
	Side           board.Color
	Notation       string
	NAGs           []string
	CommentsBefore []string
	CommentsAfter  []string
	Variations     []*Movetext

	move      board.Move
	promotion board.PieceKind

	beforePos    board.Position
	beforeSide   board.Color
	beforeNumber uint16
}

// ResolvedMove returns the board.Move and promotion piece kind this node
// resolved to against the position it was parsed against.
func (m *Move) ResolvedMove() (board.Move, board.PieceKind) { return m.move, m.promotion }

// setBeforeState records the position, side to move, and move number
// immediately before this move was played, so that a variation replacing
// this move can branch from the correct starting context per spec.md §4.6.
func (m *Move) setBeforeState(pos board.Position, side board.Color, number uint16) {
	m.beforePos = pos
	m.beforeSide = side
	m.beforeNumber = number
}

func (m *Move) beforeState() (board.Position, board.Color, uint16) {
	return m.beforePos, m.beforeSide, m.beforeNumber
}

// Movetext is a tree node: a line of moves plus any comments/variations
// that occur before the line starts and the result that terminates it,
// per spec.md §3 PGN.Movetext. The mainline parse produces the root node;
// each RAV inside it is a child Movetext hanging off the Move it replaces.
type Movetext struct {
	LeadingComments   []string
	LeadingVariations []*Movetext
	Moves             []*Move
	TrailingComments  []string
	Result            Result
	Diagnostics       []Diagnostic
}
