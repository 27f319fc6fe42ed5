package arma

// ImpulseResponse returns psi[0..length-1], the response of the process to a
// unit shock at t = 0 from zero state. psi[0] is the contemporaneous
// response and is always 1.
//
// A length of zero yields an empty slice.
func (p *Process) ImpulseResponse(length int) ([]float64, error) {
	if err := checkLength("impulse length", length); err != nil {
		return nil, err
	}
	f, err := p.filter()
	if err != nil {
		return nil, err
	}
	return f.ImpulseResponse(length), nil
}
