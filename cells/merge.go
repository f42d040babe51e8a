package cells

import "github.com/silinet/transistorsim/core"

// PGMergeR2 merges two adjacent propagate/generate pairs into their
// combined pair — the radix-2 prefix-merge operator: P = P_hi*P_lo,
// G = G_hi + P_hi*G_lo.
type PGMergeR2 struct {
	I0 [2]core.NetID // (p[i:k], g[i:k]) — the higher-order pair
	I1 [2]core.NetID // (p[k-1:j], g[k-1:j]) — the lower-order pair
	O  [2]core.NetID // (p[i:j], g[i:j])
}

// NewPGMergeR2 builds a propagate/generate merge cell.
func NewPGMergeR2(e *core.Engine) (PGMergeR2, error) {
	and0, err := NewAND2(e)
	if err != nil {
		return PGMergeR2{}, err
	}
	and1, err := NewAND2(e)
	if err != nil {
		return PGMergeR2{}, err
	}
	or2, err := NewOR2(e)
	if err != nil {
		return PGMergeR2{}, err
	}

	pIK, err := e.NewNet()
	if err != nil {
		return PGMergeR2{}, err
	}

	if _, err := e.NewBinding(and1.O, or2.I[0]); err != nil {
		return PGMergeR2{}, err
	}
	if _, err := e.NewInterconnect(pIK, and0.I[1], and1.I[1]); err != nil {
		return PGMergeR2{}, err
	}

	return PGMergeR2{
		I0: [2]core.NetID{pIK, or2.I[1]},
		I1: [2]core.NetID{and0.I[0], and1.I[0]},
		O:  [2]core.NetID{and0.O, or2.O},
	}, nil
}

// PGHalfMergeR2 is PGMergeR2 restricted to the generate term alone, used at
// the bit-0 boundary of a merge layer where no propagate output is needed.
type PGHalfMergeR2 struct {
	I0 [2]core.NetID // (p[i:k], g[i:k])
	I1 core.NetID    // g[k-1:j]
	O  core.NetID    // g[i:j]
}

// NewPGHalfMergeR2 builds a generate-only merge cell.
func NewPGHalfMergeR2(e *core.Engine) (PGHalfMergeR2, error) {
	and2, err := NewAND2(e)
	if err != nil {
		return PGHalfMergeR2{}, err
	}
	or2, err := NewOR2(e)
	if err != nil {
		return PGHalfMergeR2{}, err
	}
	if _, err := e.NewBinding(and2.O, or2.I[0]); err != nil {
		return PGHalfMergeR2{}, err
	}

	return PGHalfMergeR2{
		I0: [2]core.NetID{and2.I[1], or2.I[1]},
		I1: and2.I[0],
		O:  or2.O,
	}, nil
}
