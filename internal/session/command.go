package session

// Op is a logical command. Which ops are meaningful depends on the mode: the
// first group applies in View, the second in NewItem and EditItem.
type Op int

const (
	OpNone Op = iota

	OpQuit
	OpDelete
	OpToggle
	OpNew
	OpEdit
	OpDown
	OpUp
	OpReorder

	OpConfirm
	OpBackspace
	OpWordDelete
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpQuit:
		return "quit"
	case OpDelete:
		return "delete"
	case OpToggle:
		return "toggle"
	case OpNew:
		return "new"
	case OpEdit:
		return "edit"
	case OpDown:
		return "down"
	case OpUp:
		return "up"
	case OpReorder:
		return "reorder"
	case OpConfirm:
		return "confirm"
	case OpBackspace:
		return "backspace"
	case OpWordDelete:
		return "word-delete"
	case OpInsert:
		return "insert"
	default:
		return "none"
	}
}

// Command is one decoded key event. Rune is only read for OpInsert.
type Command struct {
	Op   Op
	Rune rune
}

func Cmd(op Op) Command { return Command{Op: op} }

func Insert(r rune) Command { return Command{Op: OpInsert, Rune: r} }
