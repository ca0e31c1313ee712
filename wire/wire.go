// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Wire is satisfied by every message body and by Header itself.
// Size may depend on header extensions (the BlockType bits for Publish,
// the query/response flags for NodeIdHandshake), which is why those
// messages' Deserialize functions take the decoded extension values
// alongside the body.
type Wire interface {
	Serialize() []byte
	Size() int
}
