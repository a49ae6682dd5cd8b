package bg3d

// Sink receives the header and each decoded record in stream order. A
// record is not retained by the decoder after Record returns; a sink that
// keeps it owns it.
type Sink interface {
	Header(FileHeader) error
	Record(Record) error
}

type multiSink []Sink

// MultiSink fans out to every non-nil sink in order, stopping at the first
// error.
func MultiSink(sinks ...Sink) Sink {
	var m multiSink
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

func (m multiSink) Header(h FileHeader) error {
	for _, s := range m {
		if err := s.Header(h); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Record(r Record) error {
	for _, s := range m {
		if err := s.Record(r); err != nil {
			return err
		}
	}
	return nil
}
