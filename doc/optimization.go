package doc

import "github.com/multical/multical/pkg/cli"

var OptimizationTopic = &cli.Command{
	Topic: "optimization",
	Short: "bundle adjustment and outlier rejection",
	Long: `
After initialization, 'calibrate' runs --iter rounds of bundle adjustment.
Each round rejects points whose reprojection error exceeds --outlier times
the upper quartile of all errors, then optimizes again.

--loss selects the loss function: linear (least squares), soft_l1, huber,
cauchy or arctan. The non-linear losses reduce the influence of large errors
beyond a threshold set with --auto_scale, again as a factor of the upper
quartile; --auto_scale has no effect with linear loss.

Parameter blocks can be held fixed with --fix_intrinsic,
--fix_camera_poses, --fix_board_poses and --fix_motion. Motion between
frames follows --motion_model, static or rolling.
`,
}
