package ports

type ResultCode string

const (
	ResultOK   ResultCode = "OK"
	ResultNoop ResultCode = "NOOP"
	ResultWon  ResultCode = "WON"
	ResultLost ResultCode = "LOST"
)

type ActionMetrics interface {
	RecordSuccess(resultCode ResultCode)
	RecordRejected()
	RecordConflict()
	RecordFailure()
}
