package schemes

import (
	"context"

	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
)

// localSchemes is served when the cloud collection is empty or unreachable,
// so farmers always see the core programs.
var localSchemes = []models.Scheme{
	{
		ID:          "1",
		Name:        "प्रधानमंत्री किसान सम्मान निधि (PM-KISAN)",
		Description: "हर eligible किसान को ₹6000 प्रति वर्ष की आर्थिक सहायता।",
		URL:         "https://pmkisan.gov.in",
	},
	{
		ID:          "2",
		Name:        "प्रधानमंत्री फसल बीमा योजना (PMFBY)",
		Description: "फसल नुकसान पर बीमा सुरक्षा।",
		URL:         "https://pmfby.gov.in",
	},
	{
		ID:          "3",
		Name:        "कृषि यंत्र सब्सिडी योजना",
		Description: "कृषि उपकरणों पर सरकार से सब्सिडी।",
		URL:         "https://agrimachinery.nic.in",
	},
	{
		ID:          "4",
		Name:        "ई-नाम (eNAM)",
		Description: "किसानों के लिए एक unified online मंडी।",
		URL:         "https://enam.gov.in",
	},
	{
		ID:          "5",
		Name:        "राष्ट्रीय कृषि विकास योजना (RKVY)",
		Description: "राज्यों को कृषि क्षेत्र में समग्र विकास के लिए वित्तीय सहायता।",
		URL:         "https://rkvy.nic.in/",
	},
}

// Service lists government schemes from the cloud collection.
type Service struct {
	store  docstore.SchemeStore
	logger *zap.Logger
}

// NewService wires a new scheme listing service.
func NewService(store docstore.SchemeStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns the cloud schemes, falling back to the built-in list when the
// collection is empty or the lookup fails.
func (s *Service) List(ctx context.Context) []models.Scheme {
	schemes, err := s.store.ListSchemes(ctx)
	if err != nil {
		s.logger.Warn("scheme lookup failed, serving local list", zap.Error(err))
		return localSchemes
	}
	if len(schemes) == 0 {
		return localSchemes
	}
	return schemes
}
