package errs

var (
	InvalidInput     = ErrorCode{Code: 420001, Msg: "Message is required"}
	InvalidSection   = ErrorCode{Code: 420002, Msg: "Section and content are required"}
	SystemError      = ErrorCode{Code: 520001, Msg: "Server error"}
	SuggestionFailed = ErrorCode{Code: 520002, Msg: "Failed to generate suggestions"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
