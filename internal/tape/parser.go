package tape

import (
	"fmt"
	"strconv"
)

// Parser parses key scripts into commands
type Parser struct {
	lexer   *Lexer
	curTok  Token
	peekTok Token
	errors  []string
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l}
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lexer.NextToken()
}

// Parse parses the entire script and returns all commands
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		if !ok {
			p.skipToNextLine()
			continue
		}
		commands = append(commands, cmd)
		p.expectLineEnd()
	}

	return commands
}

// parseCommand parses a single command starting at the current token
func (p *Parser) parseCommand() (Command, bool) {
	cmd := Command{
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
		Repeat: 1,
	}

	switch tt := p.curTok.Type; {
	case tt == TOKEN_TYPE:
		return p.parseTypeCommand(cmd)
	case tt == TOKEN_KEY:
		return p.parseKeyCommand(cmd)
	case tt == TOKEN_CTRL:
		return p.parseKeyComboCommand(cmd)
	case tt == TOKEN_RESIZE:
		return p.parseResizeCommand(cmd)
	case tt.IsCommand():
		cmd.Type = CommandType(tt)
		p.nextToken()
		return p.parseRepeat(cmd)
	default:
		p.addError(fmt.Sprintf("unexpected token: %v %q", tt, p.curTok.Literal))
		return cmd, false
	}
}

// parseRepeat reads an optional repeat count after a command
func (p *Parser) parseRepeat(cmd Command) (Command, bool) {
	if p.curTok.Type != TOKEN_NUMBER {
		return cmd, true
	}
	n, err := strconv.Atoi(p.curTok.Literal)
	if err != nil || n < 1 {
		p.addError(fmt.Sprintf("invalid repeat count: %s", p.curTok.Literal))
		p.nextToken()
		return cmd, false
	}
	cmd.Repeat = n
	p.nextToken()
	return cmd, true
}

// parseTypeCommand parses Type "text" commands
func (p *Parser) parseTypeCommand(cmd Command) (Command, bool) {
	cmd.Type = CommandType_Type
	p.nextToken() // consume Type

	for p.curTok.Type == TOKEN_STRING {
		cmd.Args = append(cmd.Args, p.curTok.Literal)
		p.nextToken()
	}
	if len(cmd.Args) == 0 {
		p.addError(fmt.Sprintf("Type command expects a string, got %v", p.curTok.Type))
		return cmd, false
	}
	return cmd, true
}

// parseKeyCommand parses Key <char> [N] commands
func (p *Parser) parseKeyCommand(cmd Command) (Command, bool) {
	cmd.Type = CommandType_Key
	p.nextToken() // consume Key

	switch p.curTok.Type {
	case TOKEN_EOF, TOKEN_NEWLINE:
		p.addError("Key command expects a character")
		return cmd, false
	}
	if len(p.curTok.Literal) != 1 {
		p.addError(fmt.Sprintf("Key command expects a single character, got %q", p.curTok.Literal))
		p.nextToken()
		return cmd, false
	}
	cmd.Args = []string{p.curTok.Literal}
	p.nextToken()
	return p.parseRepeat(cmd)
}

// parseKeyComboCommand parses Ctrl+X commands
func (p *Parser) parseKeyComboCommand(cmd Command) (Command, bool) {
	cmd.Type = CommandType_KeyCombo

	for p.curTok.Type == TOKEN_CTRL {
		cmd.Args = append(cmd.Args, p.curTok.Literal)
		p.nextToken()
		if p.curTok.Type != TOKEN_PLUS {
			p.addError(fmt.Sprintf("expected + after %s", cmd.Args[len(cmd.Args)-1]))
			return cmd, false
		}
		p.nextToken()
	}

	if p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("expected key after modifier, got %v", p.curTok.Type))
		return cmd, false
	}
	cmd.Args = append(cmd.Args, p.curTok.Literal)
	p.nextToken()

	kc, err := ParseKeyCombo(cmd.String())
	if err == nil {
		_, err = kc.Key()
	}
	if err != nil {
		p.addError(err.Error())
		return cmd, false
	}
	return p.parseRepeat(cmd)
}

// parseResizeCommand parses Resize <width> <height> commands
func (p *Parser) parseResizeCommand(cmd Command) (Command, bool) {
	cmd.Type = CommandType_Resize
	p.nextToken() // consume Resize

	for range 2 {
		if p.curTok.Type != TOKEN_NUMBER {
			p.addError(fmt.Sprintf("Resize expects a width and a height, got %v", p.curTok.Type))
			return cmd, false
		}
		cmd.Args = append(cmd.Args, p.curTok.Literal)
		p.nextToken()
	}
	if _, _, err := cmd.Size(); err != nil {
		p.addError(err.Error())
		return cmd, false
	}
	return cmd, true
}

// expectLineEnd reports trailing tokens and skips to the next line
func (p *Parser) expectLineEnd() {
	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.addError(fmt.Sprintf("unexpected %v %q at end of command", p.curTok.Type, p.curTok.Literal))
		p.skipToNextLine()
	}
}

// skipToNextLine skips tokens until the next newline
func (p *Parser) skipToNextLine() {
	for p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.nextToken()
	}
}

// addError adds an error to the parser's error list
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.curTok.Line, msg))
}

// Errors returns the list of parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseFile parses a key script from a string
func ParseFile(content string) ([]Command, []string) {
	p := NewParser(New(content))
	commands := p.Parse()
	return commands, p.Errors()
}
