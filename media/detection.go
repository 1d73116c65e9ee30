package media

import (
	"fmt"
	"image"
	"log"

	"gocv.io/x/gocv"

	"github.com/hollis-git/lineagebackend/models"
)

// DetectionResult is one detected face in pixel coordinates.
type DetectionResult struct {
	X          int
	Y          int
	W          int
	H          int
	Confidence float32
}

// DNNFaceDetector finds faces in portrait scans with an OpenCV DNN model.
// Detected regions become media references with percent-coordinate
// rectangles, the same shape manual face tagging produces.
type DNNFaceDetector struct {
	Net     gocv.Net
	Enabled bool

	InputSizeW    int
	InputSizeH    int
	ScaleFactor   float64
	MeanVal       gocv.Scalar
	ConfThreshold float32
}

// NewDNNFaceDetector loads the DNN model
func NewDNNFaceDetector(configPath, modelPath string) *DNNFaceDetector {
	if configPath == "" || modelPath == "" {
		log.Println("media.detection: config or model path is empty, disabling DNN detector")
		return &DNNFaceDetector{Enabled: false}
	}

	net := gocv.ReadNet(modelPath, configPath)
	if net.Empty() {
		log.Printf("media.detection: ERROR loading network model: config=%s, model=%s", configPath, modelPath)
		return &DNNFaceDetector{Enabled: false}
	}
	log.Printf("media.detection: successfully loaded face detection model")

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &DNNFaceDetector{
		Net:           net,
		Enabled:       true,
		InputSizeW:    300,
		InputSizeH:    300,
		ScaleFactor:   1.0,
		MeanVal:       gocv.NewScalar(104.0, 177.0, 123.0, 0),
		ConfThreshold: 0.5,
	}
}

func (d *DNNFaceDetector) Close() {
	if d != nil && d.Enabled {
		d.Net.Close()
		d.Enabled = false
	}
}

// DetectFaces runs face detection using the loaded DNN model
func (d *DNNFaceDetector) DetectFaces(img gocv.Mat) []DetectionResult {
	if d == nil || !d.Enabled || img.Empty() {
		return nil
	}

	imgHeight := float32(img.Rows())
	imgWidth := float32(img.Cols())

	blob := gocv.BlobFromImage(img, d.ScaleFactor, image.Pt(d.InputSizeW, d.InputSizeH), d.MeanVal, false, false)
	defer blob.Close()

	d.Net.SetInput(blob, "")
	detectionsMat := d.Net.Forward("")
	defer detectionsMat.Close()

	results := []DetectionResult{}

	sizes := detectionsMat.Size()
	if len(sizes) < 3 {
		log.Printf("media.detection: unexpected output matrix dimensions: %v", sizes)
		return results
	}
	numDetections := sizes[2]
	if numDetections == 0 {
		return results
	}

	// reshape to [N, 7] so rows can be read with GetFloatAt(row, col)
	detections2D := detectionsMat.Reshape(1, numDetections*sizes[3])
	detectionsData := detections2D.Reshape(1, numDetections)
	defer detectionsData.Close()

	for i := 0; i < numDetections; i++ {
		confidence := detectionsData.GetFloatAt(i, 2)
		if confidence <= d.ConfThreshold {
			continue
		}
		xMin := detectionsData.GetFloatAt(i, 3) * imgWidth
		yMin := detectionsData.GetFloatAt(i, 4) * imgHeight
		xMax := detectionsData.GetFloatAt(i, 5) * imgWidth
		yMax := detectionsData.GetFloatAt(i, 6) * imgHeight

		xMin = max(0, xMin)
		yMin = max(0, yMin)
		xMax = min(imgWidth, xMax)
		yMax = min(imgHeight, yMax)

		if xMax > xMin && yMax > yMin {
			results = append(results, DetectionResult{
				X:          int(xMin),
				Y:          int(yMin),
				W:          int(xMax - xMin),
				H:          int(yMax - yMin),
				Confidence: confidence,
			})
		}
	}

	return results
}

// DetectFacesInFile runs face detection on an image file.
func DetectFacesInFile(imagePath string, detector *DNNFaceDetector) ([]DetectionResult, error) {
	if detector == nil || !detector.Enabled {
		return nil, nil
	}

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return nil, fmt.Errorf("failed to read image file for dnn: %s", imagePath)
	}
	defer img.Close()

	detections := detector.DetectFaces(img)
	log.Printf("media.detection: found %d face(s) in %s", len(detections), imagePath)
	return detections, nil
}

// DetectionToMediaRef converts a pixel-coordinate detection into a media
// reference with a percent-coordinate rectangle [x1, y1, x2, y2].
func DetectionToMediaRef(mediaHandle string, d DetectionResult, imgWidth, imgHeight int) models.MediaRef {
	if imgWidth <= 0 || imgHeight <= 0 {
		return models.MediaRef{Ref: mediaHandle}
	}
	x1 := d.X * 100 / imgWidth
	y1 := d.Y * 100 / imgHeight
	x2 := (d.X + d.W) * 100 / imgWidth
	y2 := (d.Y + d.H) * 100 / imgHeight
	return models.MediaRef{
		Ref:  mediaHandle,
		Rect: []int{x1, y1, x2, y2},
	}
}
