package costfunction

type DistanceStrategy struct {
}

func NewDistanceStrategy() *DistanceStrategy {
	return &DistanceStrategy{}
}

func (ds *DistanceStrategy) Cost(distanceMeter float64, rec RecordAttributes) float64 {
	return distanceMeter
}

func (ds *DistanceStrategy) Name() string {
	return "distance"
}
