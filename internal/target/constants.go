package target

// Sounds
const (
	SoundAxeAction        = 0x13E
	SoundFurnitureDestroy = 0x3B3
)

// FurnitureDestroyRange is how close an actor must stand to break furniture
const FurnitureDestroyRange = 2

// Player-facing messages
const (
	MsgLandmarkProtected  = "A magical force prevents you from destroying this landmark."
	MsgMustBeInBackpack   = "This item must be in your backpack to be used."
	MsgTooFarAway         = "That is too far away."
	MsgCannotDestroyHere  = "You can't destroy that while it is here."
	MsgFurnitureDestroyed = "You destroy the item."
)

// Log messages
const (
	LogMsgTargetDispatched = "Harvest target dispatched"
)
