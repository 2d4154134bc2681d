package podman_test

import (
	"bytes"
	"fmt"
	"io"
)

// bufferWriter is an internal.Writer that captures output for assertions.
type bufferWriter struct {
	buf *bytes.Buffer
}

func newBufferWriter() *bufferWriter {
	return &bufferWriter{buf: &bytes.Buffer{}}
}

func (w *bufferWriter) Print(v ...interface{}) { fmt.Fprint(w.buf, v...) }
func (w *bufferWriter) Printf(format string, v ...interface{}) {
	fmt.Fprintf(w.buf, format, v...)
}
func (w *bufferWriter) Println(v ...interface{}) { fmt.Fprintln(w.buf, v...) }
func (w *bufferWriter) Warning(v ...interface{}) {
	fmt.Fprint(w.buf, "Warning: ")
	fmt.Fprintln(w.buf, v...)
}
func (w *bufferWriter) Warningf(format string, v ...interface{}) {
	fmt.Fprintf(w.buf, "Warning: "+format+"\n", v...)
}
func (w *bufferWriter) GetWriter() io.Writer { return w.buf }
func (w *bufferWriter) String() string       { return w.buf.String() }
