package minimax

import "math"

// Score of a won terminal position at depth 0, every ply towards the end
// lowers it by 1, so the search prefers faster wins and slower losses
const WinScore int = 10

const DrawScore int = 0

// Initial bound of the alpha-beta window, the window is (-Infinity, Infinity)
const Infinity int = math.MaxInt
