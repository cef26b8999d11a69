package arrival_estimate

import "time"

// DefaultLeadTime время до прибытия, которое обещается при принятии заявки.
const DefaultLeadTime = 10 * time.Minute

type ArrivalEstimateFactory struct {
	leadTime time.Duration
}

func New() *ArrivalEstimateFactory {
	return &ArrivalEstimateFactory{
		leadTime: DefaultLeadTime,
	}
}

func (f *ArrivalEstimateFactory) EstimateArrival(claimedAt time.Time) time.Time {
	return claimedAt.Add(f.leadTime)
}
