package drive

import (
	"api/integrations/google"
	"api/utils"
	"context"
	"net/http"
	"time"
)

// ListFiles lista los archivos de Drive usando el token guardado en settings.
func ListFiles(w http.ResponseWriter, r *http.Request) {
	folderID := r.URL.Query().Get("folder_id")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	googleClient := google.NewClient()

	accessToken, err := googleClient.LoadAccessToken(ctx)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	files, err := googleClient.ListDriveFiles(ctx, accessToken, folderID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_GOOGLE)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", files, 0)
}
