package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"runtime"
)

var (
	_ encoding.TextMarshaler = LogContext{}
)

const callerTmpl = "%s:%d"

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Location is the URL a router was handling during the logging event.
	Location string

	// Pattern is the route pattern matching Location, if any.
	Pattern string
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Location != "" {
		m["location"] = lc.Location
	}

	if lc.Pattern != "" {
		m["pattern"] = lc.Pattern
	}

	return json.Marshal(m)
}

// String renders LogContext as the JSON MarshalText produces.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}

	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() { 		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}
