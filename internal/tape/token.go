package tape

// TokenType represents the type of a token in a key script
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"
	TOKEN_NUMBER     TokenType = "NUMBER"
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER"

	// Symbols
	TOKEN_PLUS TokenType = "PLUS"

	// Commands - Basic
	TOKEN_TYPE      TokenType = "Type"
	TOKEN_KEY       TokenType = "Key"
	TOKEN_ENTER     TokenType = "Enter"
	TOKEN_SPACE     TokenType = "Space"
	TOKEN_BACKSPACE TokenType = "Backspace"
	TOKEN_DELETE    TokenType = "Delete"
	TOKEN_TAB       TokenType = "Tab"
	TOKEN_ESCAPE    TokenType = "Escape"

	// Commands - Navigation
	TOKEN_UP        TokenType = "Up"
	TOKEN_DOWN      TokenType = "Down"
	TOKEN_LEFT      TokenType = "Left"
	TOKEN_RIGHT     TokenType = "Right"
	TOKEN_HOME      TokenType = "Home"
	TOKEN_END       TokenType = "End"
	TOKEN_PAGE_UP   TokenType = "PageUp"
	TOKEN_PAGE_DOWN TokenType = "PageDown"

	// Commands - Modifiers
	TOKEN_CTRL TokenType = "Ctrl"

	// Commands - Terminal
	TOKEN_RESIZE TokenType = "Resize"
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type starts a command
func (tt TokenType) IsCommand() bool {
	switch tt {
	case TOKEN_TYPE, TOKEN_KEY, TOKEN_ENTER, TOKEN_SPACE, TOKEN_BACKSPACE,
		TOKEN_DELETE, TOKEN_TAB, TOKEN_ESCAPE,
		TOKEN_UP, TOKEN_DOWN, TOKEN_LEFT, TOKEN_RIGHT, TOKEN_HOME, TOKEN_END,
		TOKEN_PAGE_UP, TOKEN_PAGE_DOWN,
		TOKEN_CTRL, TOKEN_RESIZE:
		return true
	}
	return false
}

// IsNavigationKey returns true if the token is a navigation key
func (tt TokenType) IsNavigationKey() bool {
	switch tt {
	case TOKEN_UP, TOKEN_DOWN, TOKEN_LEFT, TOKEN_RIGHT, TOKEN_HOME, TOKEN_END,
		TOKEN_PAGE_UP, TOKEN_PAGE_DOWN:
		return true
	}
	return false
}

// KeywordTokenMap maps string keywords to token types
var KeywordTokenMap = map[string]TokenType{
	// Basic commands
	"Type":      TOKEN_TYPE,
	"Key":       TOKEN_KEY,
	"Enter":     TOKEN_ENTER,
	"Space":     TOKEN_SPACE,
	"Backspace": TOKEN_BACKSPACE,
	"Delete":    TOKEN_DELETE,
	"Tab":       TOKEN_TAB,
	"Escape":    TOKEN_ESCAPE,

	// Navigation
	"Up":       TOKEN_UP,
	"Down":     TOKEN_DOWN,
	"Left":     TOKEN_LEFT,
	"Right":    TOKEN_RIGHT,
	"Home":     TOKEN_HOME,
	"End":      TOKEN_END,
	"PageUp":   TOKEN_PAGE_UP,
	"PageDown": TOKEN_PAGE_DOWN,

	// Modifiers
	"Ctrl": TOKEN_CTRL,

	// Terminal
	"Resize": TOKEN_RESIZE,
}

// LookupKeyword returns the token type for a keyword, or TOKEN_IDENTIFIER if not a keyword
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
