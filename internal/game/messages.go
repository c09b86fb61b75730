package game

// Hints shown for the current state.
const (
	HintMainMenu          = "Main menu: type 'start' to enter the dungeon."
	HintRoomChoiceCanSkip = "Room: 'f' to face, 's' to skip."
	HintRoomChoiceNoSkip  = "Room: 'f' to face (skip already used)."
	HintCardSelection     = "Select: type 1-4 to play a card."
	HintWeaponPrompt      = "Prompt: type 'y' or 'n'."
	HintAcknowledge       = "Battle won. Press enter to continue."
	HintGameOver          = "Game over: type 'restart' to play again."
)

// Status messages.
const (
	MsgEnteredDungeon = "Entered the dungeon."
	MsgFaceRoom       = "Facing the room. Choose a card."
	MsgSkippedRoom    = "Skipped the room."
	MsgRoomResolved   = "Room resolved. Face or skip the next room."
	MsgYouSurvived    = "You survived the dungeon!"
	MsgYouDied        = "You succumbed to the dungeon's monsters."
	MsgPotionWasted   = "Potion wasted (only 1 per room)."
)

// Guidance set when an operation is refused.
const (
	MsgNeedStart            = "Type 'start' to enter the dungeon."
	MsgAlreadyStarted       = "You are already in the dungeon."
	MsgNeedFaceOrSkip       = "Type 'f' to face, or 's' to skip."
	MsgNeedFaceOnly         = "Type 'f' to face (skip already used)."
	MsgInvalidCardSelection = "Invalid card selection."
	MsgMustFaceFirst        = "You must face the room ('f') before selecting."
	MsgNeedYOrN             = "Type 'y' or 'n'."
	MsgRestartHelp          = "Type 'restart' to play again."
	MsgNoMonstersRemain     = "No monsters remain. You defeated them all!"
)
