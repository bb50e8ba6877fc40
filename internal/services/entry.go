package services

var (
	UriPathService InterUriPathService
	UriDefService  InterUriDefService
)

func NewServices() {
	UriPathService = newInterUriPathService()
	UriDefService = newInterUriDefService()
}
