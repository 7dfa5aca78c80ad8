package models

// Name holds the display name of a Pokémon per language. All fields are
// optional; a record may carry any subset of translations.
type Name struct {
	English  string `json:"english,omitempty"  bson:"english,omitempty"`
	Japanese string `json:"japanese,omitempty" bson:"japanese,omitempty"`
	Chinese  string `json:"chinese,omitempty"  bson:"chinese,omitempty"`
	French   string `json:"french,omitempty"   bson:"french,omitempty"`
}

// BaseStats holds the six fixed base stats of a Pokémon.
type BaseStats struct {
	HP        int `json:"HP"          bson:"hp"`
	Attack    int `json:"Attack"      bson:"attack"`
	Defense   int `json:"Defense"     bson:"defense"`
	SpAttack  int `json:"Sp. Attack"  bson:"sp_attack"`
	SpDefense int `json:"Sp. Defense" bson:"sp_defense"`
	Speed     int `json:"Speed"       bson:"speed"`
}

// Pokemon is a single catalog record. The id is client-supplied on create
// and is the only key; types keep their request order for display.
type Pokemon struct {
	ID    int        `json:"id"              bson:"id"`
	Name  Name       `json:"name"            bson:"name"`
	Type  []string   `json:"type"            bson:"type"`
	Base  *BaseStats `json:"base,omitempty"  bson:"base,omitempty"`
	Image string     `json:"image,omitempty" bson:"image,omitempty"`
}

// PokemonPatch is the body of a PUT: each non-nil field overwrites the
// same-named top-level field on the stored record, the rest are preserved.
type PokemonPatch struct {
	Name  *Name      `json:"name"`
	Type  *[]string  `json:"type"`
	Base  *BaseStats `json:"base"`
	Image *string    `json:"image"`
}

// Apply shallow-merges the patch onto p.
func (patch *PokemonPatch) Apply(p *Pokemon) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Base != nil {
		p.Base = patch.Base
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
}
