package core

// Color names the role a screen cell plays. The terminal layer decides how
// each role looks.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorPip
	ColorPlayer
	ColorPursuer
	ColorFleeing // pursuer while the player is powered up
	ColorPowerUp
	ColorHUD
	ColorAlert
	ColorMuted
)
