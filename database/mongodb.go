package database

import (
	"api/utils"
	"os"
	"time"
)

const (
	MONGO_TIMEOUT                    = 20 * time.Second
	COLLECTION_UNIFIED_CONTACTS      = "unified_contacts"
	COLLECTION_UNIFIED_COMPANIES     = "unified_companies"
	COLLECTION_CASES                 = "cases"
	COLLECTION_WEBINAR_EVENTS        = "webinar_events_v2"
	COLLECTION_AUDIT_LOGS            = "audit_logs"
	COLLECTION_SCRAPER_OPPORTUNITIES = "scraper_opportunities"
	COLLECTION_PHARMA_MEDICATIONS    = "pharma_medications"
	COLLECTION_LINKEDIN_IMPORT_JOBS  = "linkedin_import_jobs"
	COLLECTION_DOCUMENTS             = "documents"
	COLLECTION_MEDIA_CONTACTS        = "media_contacts"
	COLLECTION_SETTINGS              = "settings"
)

func GetDB() string {
	environment := os.Getenv(utils.ENV)

	if environment == utils.ENV_RELEASE {
		return "production"
	}

	if environment == utils.ENV_HOMOLOG {
		return "homolog"
	}

	if environment == utils.ENV_DEVELOPMENT {
		return "development"
	}

	panic("[MongoDB] Invalid DB name")
}
