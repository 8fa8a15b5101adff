package options

type TRNGOptions struct {
	debug     bool
	TraceTick bool
	TraceWord bool
}

func NewTRNGOptions(options *TRNGOptions) *TRNGOptions {

	opt := &TRNGOptions{}
	if options != nil {
		opt.debug = options.debug
		opt.TraceTick = options.TraceTick
		opt.TraceWord = options.TraceWord
	}
	return opt
}
