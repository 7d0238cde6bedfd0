package render

import (
	"github.com/lixenwraith/duck-hunt/component"
)

// Sprite rows for a right-facing bird; left-facing rows are mirrored at load
var birdFramesRight = [component.FrameDead + 1][3]string{
	{
		`  \\      `,
		` ==(o)>   `,
		`          `,
	},
	{
		`          `,
		` ==(o)>   `,
		`  //      `,
	},
	{
		`          `,
		` ==(o)>   `,
		`   \\     `,
	},
	{
		`   //     `,
		` ==(o)>   `,
		`          `,
	},
	{
		`   x      `,
		` ~~(x)~   `,
		`   ||     `,
	},
}

var birdFramesLeft = mirrorFrames(birdFramesRight)

var mirrorRune = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
}

func mirrorFrames(src [component.FrameDead + 1][3]string) [component.FrameDead + 1][3]string {
	var dst [component.FrameDead + 1][3]string
	for f := range src {
		for row := range src[f] {
			rs := []rune(src[f][row])
			for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
				rs[i], rs[j] = rs[j], rs[i]
			}
			for i, r := range rs {
				if m, ok := mirrorRune[r]; ok {
					rs[i] = m
				}
			}
			dst[f][row] = string(rs)
		}
	}
	return dst
}

// birdSprite returns sprite rows for a frame and heading; unknown frames render dead
func birdSprite(frame component.Frame, dir component.Direction) [3]string {
	if frame > component.FrameDead {
		frame = component.FrameDead
	}
	if dir == component.DirLeft {
		return birdFramesLeft[frame]
	}
	return birdFramesRight[frame]
}
