package enum

type Color int

const (
	Red Color = iota + 1
	Light_Red
	Blue // name="sky blue"
)

type Dup uint8

const (
	DupA Dup = iota // name=same
	DupB            // name=same
)
