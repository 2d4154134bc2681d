package engine_test

import (
	"bytes"
	"fmt"
	"io"
)

// mockWriter is an internal.Writer that captures output for assertions.
type mockWriter struct {
	buf *bytes.Buffer
}

func newMockWriter() *mockWriter {
	return &mockWriter{buf: &bytes.Buffer{}}
}

func (m *mockWriter) Print(v ...interface{}) { fmt.Fprint(m.buf, v...) }
func (m *mockWriter) Printf(format string, v ...interface{}) {
	fmt.Fprintf(m.buf, format, v...)
}
func (m *mockWriter) Println(v ...interface{}) { fmt.Fprintln(m.buf, v...) }
func (m *mockWriter) Warning(v ...interface{}) {
	fmt.Fprint(m.buf, "Warning: ")
	fmt.Fprintln(m.buf, v...)
}
func (m *mockWriter) Warningf(format string, v ...interface{}) {
	fmt.Fprintf(m.buf, "Warning: "+format+"\n", v...)
}
func (m *mockWriter) GetWriter() io.Writer { return m.buf }
func (m *mockWriter) String() string       { return m.buf.String() }
