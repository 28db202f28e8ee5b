package response

import "gin-user-rpc/pkg/contract"

// Error builds the error body for status code; customMsg overrides the default.
func Error(code int, customMsg string) contract.ErrorBody {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	if msg == "" {
		msg = MsgInternalError
	}
	return contract.ErrorBody{Error: msg}
}

// Invalid builds a 400 body listing the offending fields.
func Invalid(issues []contract.FieldIssue) contract.ErrorBody {
	return contract.ErrorBody{Error: MsgValidation, Issues: issues}
}
