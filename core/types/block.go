package types

// Block is the inscription event feed of one block height, ordered by event id.
// A block without events is valid and still advances the cursor.
type Block struct {
	Height int64
	Events []*InscriptionEvent
}

func (b *Block) BlockHeight() int64 {
	return b.Height
}
