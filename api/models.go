package api

import (
	"fmt"

	"github.com/aokblast/sicxeasm/service"
)

// AssembleRequest is the body of POST /api/v1/assemble.
type AssembleRequest struct {
	Filename string `json:"filename"`
	Source   string `json:"source"`
}

// AssembleResponse mirrors service.Result as wire JSON.
type AssembleResponse struct {
	ProgramName string        `json:"programName"`
	Header      string        `json:"header"`
	Texts       []string      `json:"texts"`
	End         string        `json:"end"`
	Listing     []ListingLine `json:"listing"`
}

// ListingLine is one row of the rendered listing.
type ListingLine struct {
	Line    int    `json:"line"`
	Address string `json:"address"`
	Label   string `json:"label"`
	Operate string `json:"operate"`
	Operand string `json:"operand"`
	Opcode  string `json:"opcode"`
}

// SessionCreateRequest is the body of POST /api/v1/session.
type SessionCreateRequest struct {
	Filename string `json:"filename"`
	Source   string `json:"source"`
}

// SessionResponse describes a stored session.
type SessionResponse struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	CreatedAt string `json:"createdAt"`
}

// ErrorResponse is the JSON body of any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toAssembleResponse(result *service.Result) AssembleResponse {
	texts := make([]string, 0, len(result.Texts))
	for _, t := range result.Texts {
		texts = append(texts, t.String())
	}

	lines := make([]ListingLine, 0, len(result.Listing))
	for _, row := range result.Listing {
		lines = append(lines, ListingLine{
			Line:    row.Line,
			Address: fmt.Sprintf("%06X", row.Address),
			Label:   row.Label,
			Operate: row.Operate,
			Operand: row.Operand,
			Opcode:  row.Opcode,
		})
	}

	return AssembleResponse{
		ProgramName: result.Program.ProgramName,
		Header:      result.Header.String(),
		Texts:       texts,
		End:         result.End.String(),
		Listing:     lines,
	}
}
