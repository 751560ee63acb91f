package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	ItemNotFound       failure.ErrorCode = "ItemNotFound"
	ItemAlreadyExists  failure.ErrorCode = "ItemAlreadyExists"
	InvalidNotifierID  failure.ErrorCode = "InvalidNotifierID"
	InvalidRemoterID   failure.ErrorCode = "InvalidRemoterID"
	InvalidPriceSpec   failure.ErrorCode = "InvalidPriceSpec"
	TradeNotFound      failure.ErrorCode = "TradeNotFound"
	InvalidTradeID     failure.ErrorCode = "InvalidTradeID"
	InvalidAccessToken failure.ErrorCode = "InvalidAccessToken"

	RemoteDecodeError    failure.ErrorCode = "RemoteDecodeError"
	RemoteTransportError failure.ErrorCode = "RemoteTransportError"
	PersistenceError     failure.ErrorCode = "PersistenceError"
)
