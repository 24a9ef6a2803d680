package controllers

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
}

type shortestPathResponse struct {
	Eta        float64  `json:"eta"`
	Dist       float64  `json:"distance"`
	Path       string   `json:"path"`
	VertexPath []uint32 `json:"vertex_path"`
}

func NewShortestPathResponse(eta, dist float64, path string, vertexPath []uint32) shortestPathResponse {
	return shortestPathResponse{
		Eta:        eta,
		Dist:       dist,
		Path:       path,
		VertexPath: vertexPath,
	}
}

type vertexDistance struct {
	Vertex      uint32  `json:"vertex"`
	Distance    float64 `json:"distance"`
	Predecessor *uint32 `json:"predecessor,omitempty"`
}

type ssspResponse struct {
	Source    uint32           `json:"source"`
	Reached   int              `json:"reached"`
	Distances []vertexDistance `json:"distances"`
}

type distanceMatrixRequest struct {
	Sources []uint32 `json:"sources" validate:"required,min=1"`
	Targets []uint32 `json:"targets" validate:"required,min=1"`
}

type distanceMatrixResponse struct {
	Durations [][]float64 `json:"durations"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
