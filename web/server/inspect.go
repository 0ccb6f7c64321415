package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Lambert      float64                `json:"lambert"`
	Specular     float64                `json:"specular"`
	Color        string                 `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// inspectPixel traces the primary ray of one pixel and describes what it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResponse, error) {
	generator, err := renderer.NewRayGenerator(sceneObj.GetCamera(), sceneObj.GetImageView())
	if err != nil {
		return InspectResponse{}, err
	}

	dir := generator.Ray(pixelX, pixelY)
	hit := renderer.Intersect(dir, sceneObj.GetSpheres(), sceneObj.GetPlanes())
	if hit.Kind == renderer.HitNone {
		return InspectResponse{
			Hit:   false,
			Color: hexColor(sceneObj.GetBackgroundColor()),
		}, nil
	}

	normal := hit.Normal()
	mat := hit.Material()
	lambert, specular := mat.Intensity(hit.Point, normal, dir, sceneObj.GetLights())

	return InspectResponse{
		Hit:          true,
		GeometryType: hit.Kind.String(),
		Point:        vecArray(hit.Point),
		Normal:       vecArray(normal),
		Distance:     hit.Distance,
		Lambert:      lambert,
		Specular:     specular,
		Color:        hexColor(mat.Color.Scale(lambert + specular)),
		Properties: map[string]interface{}{
			"material": map[string]interface{}{
				"color":     hexColor(mat.Color),
				"shininess": mat.Shininess,
			},
			"geometry": extractGeometryInfo(hit),
		},
	}, nil
}

// extractGeometryInfo describes the primitive that was hit
func extractGeometryInfo(hit renderer.Hit) map[string]interface{} {
	properties := make(map[string]interface{})

	switch hit.Kind {
	case renderer.HitSphere:
		properties["center"] = vecArray(hit.Sphere.Center)
		properties["radius"] = hit.Sphere.Radius

	case renderer.HitFacet:
		properties["vertices"] = [3][3]float64{
			vecArray(hit.Facet.P1), vecArray(hit.Facet.P2), vecArray(hit.Facet.P3),
		}
		properties["center"] = vecArray(hit.Facet.Center)
		properties["area"] = hit.Facet.Area()
	}

	return properties
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &SceneRequest{}
	if err := s.parseSceneParams(r, inspectReq); err != nil {
		writeJSONError(w, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(*inspectReq)
	if err != nil {
		writeJSONError(w, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeJSONError(w, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func writeJSONError(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
