package ygoprodeck

// CardInfoResponse is the envelope returned by cardinfo.php.
type CardInfoResponse struct {
	Data []Card `json:"data"`
}

// Card is a raw card record as published by the provider. Only the fields the
// catalog build reads are decoded.
type Card struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	CardImages []CardImage     `json:"card_images"`
	CardSets   []CardSetPrint  `json:"card_sets,omitempty"`
	MiscInfo   []CardMiscEntry `json:"misc_info,omitempty"`
}

// CardImage identifies one artwork. Alternate artworks carry their own ids.
type CardImage struct {
	ID int64 `json:"id"`
}

// CardSetPrint is one appearance of a card in a set.
type CardSetPrint struct {
	SetName string `json:"set_name"`
	SetCode string `json:"set_code,omitempty"`
}

// CardMiscEntry carries the optional misc=yes payload.
type CardMiscEntry struct {
	BetaName string `json:"beta_name,omitempty"`
}

// HasCardSets reports whether the provider lists any printing of the card.
func (c Card) HasCardSets() bool {
	return len(c.CardSets) > 0
}

// CardSet is a raw record from cardsets.php. TCGDate is empty when the set
// was never released in the TCG.
type CardSet struct {
	SetName    string `json:"set_name"`
	SetCode    string `json:"set_code"`
	NumOfCards int    `json:"num_of_cards"`
	TCGDate    string `json:"tcg_date,omitempty"`
}
