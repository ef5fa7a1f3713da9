package mapping

func mapSlice[S, D any](in []S, fn func(S) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func mapPtr[S, D any](in *S, fn func(S) D) *D {
	if in == nil {
		return nil
	}
	out := fn(*in)
	return &out
}
