package dto

import (
	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/service"
)

func FromCountry(country *domain.Country) CountryResponse {
	return CountryResponse{
		ID:        country.ID,
		Slug:      country.Slug,
		Name:      country.Name,
		FlagURL:   country.FlagSVGURL,
		CreatedAt: country.CreatedAt,
	}
}

func FromCountries(countries []domain.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = FromCountry(&countries[i])
	}
	return responses
}

func FromLoginResult(result *service.LoginResult) LoginResponse {
	return LoginResponse{
		Country:   FromCountry(result.Country),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	}
}

func FromSubmitResult(result *service.SubmitResult) UploadResponse {
	uploaded := make([]UploadedImageResponse, len(result.Uploaded))
	for i, img := range result.Uploaded {
		uploaded[i] = UploadedImageResponse{
			SubmissionID: img.SubmissionID,
			StoragePath:  img.StoragePath,
			PublicURL:    img.PublicURL,
		}
	}
	return UploadResponse{
		Success:  true,
		BatchID:  result.BatchID,
		GroupKey: result.GroupKey,
		Uploaded: uploaded,
	}
}

func FromGroups(countryID string, groups []domain.Group) GalleryResponse {
	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		images := make([]GalleryImageResponse, len(g.Images))
		for j, img := range g.Images {
			images[j] = GalleryImageResponse(img)
		}
		responses[i] = GroupResponse{
			GroupKey:   g.GroupKey,
			Caption:    g.Caption,
			AuthorName: g.AuthorName,
			Story:      g.Story,
			CreatedAt:  g.CreatedAt,
			Legacy:     g.Legacy,
			Images:     images,
		}
	}
	return GalleryResponse{CountryID: countryID, Groups: responses}
}

func FromDeleteResult(result *service.DeleteResult) DeleteSubmissionsResponse {
	return DeleteSubmissionsResponse{
		Success: true,
		Mode:    result.Mode,
		Target:  result.Target,
		Deleted: result.Deleted,
	}
}
