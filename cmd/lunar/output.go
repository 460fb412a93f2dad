package main

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Supported output encodings.
const (
	EncodingUTF8    = "utf-8"
	EncodingGB18030 = "gb18030"
)

// Output is the writer commands print to. Text is UTF-8 internally and
// transcoded on the way out when another encoding is selected.
type Output struct {
	io.Writer
	closer io.Closer
}

// NewOutput wraps w for the named encoding.
func NewOutput(w io.Writer, encoding string) (*Output, error) {
	switch encoding {
	case "", EncodingUTF8:
		return &Output{Writer: w}, nil
	case EncodingGB18030:
		tw := transform.NewWriter(w, simplifiedchinese.GB18030.NewEncoder())
		return &Output{Writer: tw, closer: tw}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Close flushes any buffered transcoded output. It does not close the
// underlying writer.
func (o *Output) Close() error {
	if o.closer == nil {
		return nil
	}
	return o.closer.Close()
}
