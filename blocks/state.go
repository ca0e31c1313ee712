// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks

import "github.com/toole-brendan/rai/primitives"

// stateDomainSeparator is the fixed 32-byte preamble mixed into every
// state block's hash, distinguishing state-block hashes from legacy-block
// hashes and from any other use of Blake2b-256 in this module.
var stateDomainSeparator = [32]byte{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 6,
}

// StateBlock is the unified modern block form.
type StateBlock struct {
	Account        primitives.Public
	Previous       Previous
	Representative primitives.Public
	Balance        primitives.Rai
	Link           Link
}

// Kind implements Block.
func (b StateBlock) Kind() BlockType { return BlockTypeState }

// Hash implements Block: the domain separator followed by account,
// previous, representative, balance (big-endian 128-bit), link.
func (b StateBlock) Hash() primitives.BlockHash {
	return primitives.HashBytes(
		stateDomainSeparator[:],
		b.Account.Bytes(),
		b.Previous.Bytes(),
		b.Representative.Bytes(),
		b.Balance.Bytes(),
		b.Link.Bytes(),
	)
}

// Owner implements Owned.
func (b StateBlock) Owner() primitives.Public { return b.Account }

// Subtype is the inferred semantic role of a state block, determined
// only once its previous block (or absence) and balance delta are known.
type Subtype uint8

const (
	SubtypeSend Subtype = iota
	SubtypeReceive
	SubtypeChange
)

func (s Subtype) String() string {
	switch s {
	case SubtypeSend:
		return "send"
	case SubtypeReceive:
		return "receive"
	case SubtypeChange:
		return "change"
	default:
		return "unknown"
	}
}

// DecideLinkType classifies a state block. Given the state block's new
// balance, the previous block's balance, and the raw, not-yet-classified
// link bytes, it returns the reinterpreted Link, the inferred Subtype,
// and the transfer amount.
//
//   - balanceNew < balancePrev: send, link -> DestinationAccount, amount = prev-new.
//   - balanceNew > balancePrev: receive, link -> Source, amount = new-prev.
//   - balanceNew == balancePrev and link is all-zero: change, amount = 0.
//   - anything else: InvalidBlockError.
func DecideLinkType(rawLink [32]byte, balanceNew, balancePrev primitives.Rai) (Link, Subtype, primitives.Rai, error) {
	switch balanceNew.Cmp(balancePrev) {
	case -1:
		amount, ok := balancePrev.Sub(balanceNew)
		if !ok {
			return Link{}, 0, primitives.Rai{}, invalidBlock("balance decreased but delta underflowed")
		}
		dest, err := primitives.PublicFromBytes(rawLink[:])
		if err != nil {
			return Link{}, 0, primitives.Rai{}, invalidBlock("send link is not a valid account")
		}
		return LinkDestinationValue(dest), SubtypeSend, amount, nil

	case 1:
		amount, ok := balanceNew.Sub(balancePrev)
		if !ok {
			return Link{}, 0, primitives.Rai{}, invalidBlock("balance increased but delta underflowed")
		}
		src, err := primitives.BlockHashFromBytes(rawLink[:])
		if err != nil {
			return Link{}, 0, primitives.Rai{}, invalidBlock("receive link is not a valid block hash")
		}
		return LinkSourceValue(src), SubtypeReceive, amount, nil

	default: // balanceNew == balancePrev
		if rawLink != ([32]byte{}) {
			return Link{}, 0, primitives.Rai{}, invalidBlock("balance unchanged but link is non-zero")
		}
		return LinkNothingValue(), SubtypeChange, primitives.ZeroRai(), nil
	}
}
