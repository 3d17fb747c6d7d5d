package gs

import "github.com/anupsv/groth-sahai/internal/curve"

// Marshal encodes a V1Elem as its two compressed G1 points (2*48 bytes).
func (e V1Elem) Marshal() []byte {
	out := make([]byte, 0, 2*curve.G1Size)
	out = append(out, e.V1[0].Marshal()...)
	out = append(out, e.V1[1].Marshal()...)
	return out
}

// UnmarshalV1Elem decodes a V1Elem and returns the number of bytes consumed.
func UnmarshalV1Elem(data []byte) (V1Elem, int, error) {
	if len(data) < 2*curve.G1Size {
		return V1Elem{}, 0, ErrUnmarshal
	}
	p0, err := curve.UnmarshalG1(data[0:curve.G1Size])
	if err != nil {
		return V1Elem{}, 0, ErrUnmarshal
	}
	p1, err := curve.UnmarshalG1(data[curve.G1Size : 2*curve.G1Size])
	if err != nil {
		return V1Elem{}, 0, ErrUnmarshal
	}
	return V1Elem{V1: [2]curve.G1Point{p0, p1}}, 2 * curve.G1Size, nil
}

// Marshal encodes a V2Elem as its two compressed G2 points (2*96 bytes).
func (e V2Elem) Marshal() []byte {
	out := make([]byte, 0, 2*curve.G2Size)
	out = append(out, e.V2[0].Marshal()...)
	out = append(out, e.V2[1].Marshal()...)
	return out
}

// UnmarshalV2Elem decodes a V2Elem and returns the number of bytes consumed.
func UnmarshalV2Elem(data []byte) (V2Elem, int, error) {
	if len(data) < 2*curve.G2Size {
		return V2Elem{}, 0, ErrUnmarshal
	}
	p0, err := curve.UnmarshalG2(data[0:curve.G2Size])
	if err != nil {
		return V2Elem{}, 0, ErrUnmarshal
	}
	p1, err := curve.UnmarshalG2(data[curve.G2Size : 2*curve.G2Size])
	if err != nil {
		return V2Elem{}, 0, ErrUnmarshal
	}
	return V2Elem{V2: [2]curve.G2Point{p0, p1}}, 2 * curve.G2Size, nil
}

// Marshal encodes a Proof as theta[0], theta[1], phi[0], phi[1] (576 bytes).
func (p Proof) Marshal() []byte {
	out := make([]byte, 0, 2*2*curve.G1Size+2*2*curve.G2Size)
	out = append(out, p.Theta[0].Marshal()...)
	out = append(out, p.Theta[1].Marshal()...)
	out = append(out, p.Phi[0].Marshal()...)
	out = append(out, p.Phi[1].Marshal()...)
	return out
}

// UnmarshalProof decodes a fixed 576-byte Proof.
func UnmarshalProof(data []byte) (Proof, error) {
	var proof Proof
	off := 0
	for i := 0; i < 2; i++ {
		e, n, err := UnmarshalV1Elem(data[off:])
		if err != nil {
			return Proof{}, err
		}
		proof.Theta[i] = e
		off += n
	}
	for i := 0; i < 2; i++ {
		e, n, err := UnmarshalV2Elem(data[off:])
		if err != nil {
			return Proof{}, err
		}
		proof.Phi[i] = e
		off += n
	}
	return proof, nil
}

// Marshal encodes a Com as its ComC elements followed by its ComD elements.
func (c Com) Marshal() []byte {
	out := make([]byte, 0, len(c.ComC)*2*curve.G1Size+len(c.ComD)*2*curve.G2Size)
	for _, e := range c.ComC {
		out = append(out, e.Marshal()...)
	}
	for _, e := range c.ComD {
		out = append(out, e.Marshal()...)
	}
	return out
}

// UnmarshalCom decodes a Com given the expected m, n lengths.
func UnmarshalCom(data []byte, m, n int) (Com, error) {
	com := Com{ComC: make([]V1Elem, m), ComD: make([]V2Elem, n)}
	off := 0
	for i := 0; i < m; i++ {
		e, c, err := UnmarshalV1Elem(data[off:])
		if err != nil {
			return Com{}, err
		}
		com.ComC[i] = e
		off += c
	}
	for i := 0; i < n; i++ {
		e, c, err := UnmarshalV2Elem(data[off:])
		if err != nil {
			return Com{}, err
		}
		com.ComD[i] = e
		off += c
	}
	return com, nil
}
