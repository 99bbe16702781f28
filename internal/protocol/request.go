// Package protocol adapts the rules kernel to a line-oriented UCI-style
// command stream.
package protocol

import "strings"

// Request is one command line split into its command word and arguments.
type Request struct {
	Line    string
	Command string
	Args    []string
}

// ParseRequest splits a line on whitespace. The command word is lowered;
// arguments keep their case since FEN fields depend on it.
func ParseRequest(line string) Request {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	req := Request{Line: line}
	if len(fields) == 0 {
		return req
	}
	req.Command = strings.ToLower(fields[0])
	req.Args = fields[1:]
	return req
}

// Empty reports whether the line held no command.
func (r Request) Empty() bool {
	return r.Command == ""
}

// Response holds the lines to write back and whether the stream should end.
type Response struct {
	Lines []string
	Quit  bool
	Err   error
}

func (r *Response) add(line string) {
	r.Lines = append(r.Lines, line)
}
