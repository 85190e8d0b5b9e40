package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"eventbooking/internal/domain"
)

type RatingRepository struct {
	client *fs.Client
}

func NewRatingRepository(client *fs.Client) *RatingRepository {
	return &RatingRepository{client: client}
}

// ScanAll reads the whole ratings collection group. Cost grows with the total
// number of ratings across all events.
func (r *RatingRepository) ScanAll(ctx context.Context) ([]domain.Rating, error) {
	docs, err := r.client.CollectionGroup(collectionRatings).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Rating, 0, len(docs))
	for _, d := range docs {
		out = append(out, ratingFromSnapshot(d.Ref, d.Data()))
	}
	return out, nil
}

func ratingFromSnapshot(ref *fs.DocumentRef, x map[string]any) domain.Rating {
	rt := domain.Rating{
		UserID: ref.ID,
		Value:  numberField(x, "value"),
	}
	if ref.Parent != nil && ref.Parent.Parent != nil {
		rt.EventID = ref.Parent.Parent.ID
	}
	return rt
}
