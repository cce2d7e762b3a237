package track

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Capture wraps a webcam device and yields mirror-flipped frames, so screen
// motion matches hand motion the way a mirror does.
type Capture struct {
	cap     *gocv.VideoCapture
	raw     gocv.Mat
	flipped gocv.Mat
	width   int
	height  int
}

// OpenCapture opens the webcam and reads one warm-up frame to learn the
// frame size. An unreadable device is an error: the game cannot run
// without a camera.
func OpenCapture(device int) (*Capture, error) {
	cap, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", device, err)
	}

	c := &Capture{
		cap:     cap,
		raw:     gocv.NewMat(),
		flipped: gocv.NewMat(),
	}
	if err := c.read(); err != nil {
		c.Close()
		return nil, fmt.Errorf("camera warm-up: %w", err)
	}
	c.width = c.flipped.Cols()
	c.height = c.flipped.Rows()
	return c, nil
}

func (c *Capture) read() error {
	if ok := c.cap.Read(&c.raw); !ok || c.raw.Empty() {
		return fmt.Errorf("frame read failed")
	}
	gocv.Flip(c.raw, &c.flipped, 1)
	return nil
}

// Read grabs the next frame. The returned Mat is owned by the Capture and
// valid until the next Read.
func (c *Capture) Read() (*gocv.Mat, error) {
	if err := c.read(); err != nil {
		return nil, err
	}
	return &c.flipped, nil
}

// Size returns the frame dimensions in pixels.
func (c *Capture) Size() (w, h int) {
	return c.width, c.height
}

// Preview converts a frame to an RGBA image scaled to the given width,
// preserving aspect ratio. Used for the on-screen camera overlay.
func Preview(frame *gocv.Mat, width int) (image.Image, error) {
	if frame.Cols() == 0 {
		return nil, fmt.Errorf("empty frame")
	}
	height := width * frame.Rows() / frame.Cols()

	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(*frame, &small, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(small, &rgb, gocv.ColorBGRToRGBA)

	img, err := rgb.ToImage()
	if err != nil {
		return nil, fmt.Errorf("frame to image: %w", err)
	}
	return img, nil
}

// Close releases the camera and frame buffers.
func (c *Capture) Close() {
	c.raw.Close()
	c.flipped.Close()
	c.cap.Close()
}
