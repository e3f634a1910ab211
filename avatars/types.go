package avatars

// Avatar describes what a user is currently wearing. Scales and
// BodyColors are nil when the response omits them.
type Avatar struct {
	Scales              *Scales     `json:"scales"`
	PlayerAvatarType    string      `json:"playerAvatarType"`
	BodyColors          *BodyColors `json:"bodyColors"`
	Assets              []Asset     `json:"assets"`
	DefaultShirtApplied bool        `json:"defaultShirtApplied"`
	DefaultPantsApplied bool        `json:"defaultPantsApplied"`
	Emotes              []Emote     `json:"emotes"`
}

// Scales are the body proportion sliders of an avatar.
type Scales struct {
	Height     float64 `json:"height"`
	Width      float64 `json:"width"`
	Head       float64 `json:"head"`
	Depth      float64 `json:"depth"`
	Proportion float64 `json:"proportion"`
	BodyType   float64 `json:"bodyType"`
}

// BodyColors maps each body part to a BrickColor ID.
type BodyColors struct {
	HeadColorID     int `json:"headColorId"`
	TorsoColorID    int `json:"torsoColorId"`
	RightArmColorID int `json:"rightArmColorId"`
	LeftArmColorID  int `json:"leftArmColorId"`
	RightLegColorID int `json:"rightLegColorId"`
	LeftLegColorID  int `json:"leftLegColorId"`
}

// Asset is one item worn by the avatar.
type Asset struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	AssetType        *AssetType `json:"assetType"`
	CurrentVersionID int64      `json:"currentVersionId"`
}

// AssetType classifies a worn asset (shirt, hat, gear, ...).
type AssetType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Emote is one equipped emote and its wheel position.
type Emote struct {
	AssetID   int64  `json:"assetId"`
	AssetName string `json:"assetName"`
	Position  int    `json:"position"`
}
