package board

// This file contains some sample filled boards, used solely for testing.

// VsWho is a string representation of a board.
type VsWho string

const (
	// VsEmpty is a board with nothing on it.
	VsEmpty VsWho = `
   A B C D E F G H I J K L M N O
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 1| | | | | | | | | | | | | | | |0
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 2| | | | | | | | | | | | | | | |1
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 3| | | | | | | | | | | | | | | |2
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 4| | | | | | | | | | | | | | | |3
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 5| | | | | | | | | | | | | | | |4
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 6| | | | | | | | | | | | | | | |5
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 7| | | | | | | | | | | | | | | |6
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 8| | | | | | | | | | | | | | | |7
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 9| | | | | | | | | | | | | | | |8
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
10| | | | | | | | | | | | | | | |9
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
11| | | | | | | | | | | | | | | |10
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
12| | | | | | | | | | | | | | | |11
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
13| | | | | | | | | | | | | | | |12
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
14| | | | | | | | | | | | | | | |13
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
15| | | | | | | | | | | | | | | |14
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   0 1 2 3 4 5 6 7 8 9 0 1 2 3 4
`
	// VsTopRow has a full row of X tiles across row 1.
	VsTopRow VsWho = `
   A B C D E F G H I J K L M N O
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 1|X|X|X|X|X|X|X|X|X|X|X|X|X|X|X|0
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 2| | | | | | | | | | | | | | | |1
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 3| | | | | | | | | | | | | | | |2
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 4| | | | | | | | | | | | | | | |3
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 5| | | | | | | | | | | | | | | |4
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 6| | | | | | | | | | | | | | | |5
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 7| | | | | | | | | | | | | | | |6
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 8| | | | | | | | | | | | | | | |7
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 9| | | | | | | | | | | | | | | |8
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
10| | | | | | | | | | | | | | | |9
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
11| | | | | | | | | | | | | | | |10
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
12| | | | | | | | | | | | | | | |11
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
13| | | | | | | | | | | | | | | |12
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
14| | | | | | | | | | | | | | | |13
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
15| | | | | | | | | | | | | | | |14
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   0 1 2 3 4 5 6 7 8 9 0 1 2 3 4
`
	// VsFirst has a single opening play, FIRST at 8H.
	VsFirst VsWho = `
   A B C D E F G H I J K L M N O
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 1| | | | | | | | | | | | | | | |0
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 2| | | | | | | | | | | | | | | |1
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 3| | | | | | | | | | | | | | | |2
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 4| | | | | | | | | | | | | | | |3
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 5| | | | | | | | | | | | | | | |4
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 6| | | | | | | | | | | | | | | |5
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 7| | | | | | | | | | | | | | | |6
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 8| | | | | | | |F|I|R|S|T| | | |7
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 9| | | | | | | | | | | | | | | |8
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
10| | | | | | | | | | | | | | | |9
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
11| | | | | | | | | | | | | | | |10
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
12| | | | | | | | | | | | | | | |11
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
13| | | | | | | | | | | | | | | |12
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
14| | | | | | | | | | | | | | | |13
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
15| | | | | | | | | | | | | | | |14
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   0 1 2 3 4 5 6 7 8 9 0 1 2 3 4
`
	// VsDiagonal has scattered tiles, including a blank z at O15.
	VsDiagonal VsWho = `
   A B C D E F G H I J K L M N O
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 1| | | | | | | | | | | | | | | |0
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 2| |A| | | | | | | | | | | | | |1
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 3| | |B| | | | | | | | | | | | |2
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 4| | | | | | | | | | | | | | | |3
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 5| | | | | | | | | | | | | | | |4
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 6| | | | | | | | | | | | | | | |5
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 7| | | | | | | | | | | | | | | |6
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 8| | | | | | | | | | | | | | | |7
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
 9| | | | | | | | | | | | | | | |8
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
10| | | | | | | | | | | | | | | |9
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
11| | | | | | | | | | | | | | | |10
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
12| | | | | | | | | | | | | | | |11
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
13| | | | | | | | | | | | | | | |12
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
14| | | | | | | | | | | | | |Y| |13
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
15| | | | | | | | | | | | | | |z|14
  +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   0 1 2 3 4 5 6 7 8 9 0 1 2 3 4
`
)
