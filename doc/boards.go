package doc

import "github.com/multical/multical/pkg/cli"

var BoardsTopic = &cli.Command{
	Topic: "boards",
	Short: "calibration board configuration",
	Long: `
Calibration boards are described by a YAML file passed to 'calibrate' with
--boards, or to 'check_boards' as its only argument. Each entry names a
board and gives its pattern and dimensions; every board seen by the cameras
must be listed.

When --boards is not given, the calibration engine chooses the board
configuration itself. Run 'check_boards' on a new configuration before
calibrating, and with --detect to see which boards are found in a sample
image.

Relative board positions are estimated with the camera poses unless
--fix_board_poses is given, and --optimize_board additionally estimates the
non-planarity of each board.
`,
}
