package seed

import (
	"fmt"
	"io"

	"github.com/stellarnotes/internal/db"
	"github.com/stellarnotes/internal/service"
)

const nasaUploads = "https://www.nasa.gov/wp-content/uploads/2023/03/"

// SampleImages 是默认写入图库的 NASA 示例图片
var SampleImages = []service.GalleryInput{
	{
		Title:       "Earth from Space - Blue Marble",
		Description: `This spectacular "blue marble" image is the most detailed true-color image of the entire Earth to date. Using a collection of satellite-based observations, scientists and visualizers stitched together months of observations of the land surface, oceans, sea ice, and clouds into a seamless, true-color mosaic of every square kilometer of our planet.`,
		ImageURL:    nasaUploads + "blue_marble_2012.png",
		Category:    "Earth",
	},
	{
		Title:       "Mars Perseverance Rover Landing Site",
		Description: "This image shows the landscape surrounding NASA's Perseverance rover after it landed in Jezero Crater on Mars. The image was taken by the rover's navigation cameras and shows the rocky, desert-like terrain that the rover will explore as it searches for signs of ancient microbial life.",
		ImageURL:    nasaUploads + "mars_perseverance_landing_site.jpg",
		Category:    "Mars",
	},
	{
		Title:       "Hubble Deep Field - Galaxies",
		Description: "One of the most important images in astronomy, the Hubble Deep Field shows thousands of galaxies in a tiny patch of sky. This image revolutionized our understanding of the early universe and showed that galaxies formed much earlier than previously thought. Each point of light in this image is an entire galaxy containing billions of stars.",
		ImageURL:    nasaUploads + "hubble_deep_field.jpg",
		Category:    "Space",
	},
	{
		Title:       "International Space Station",
		Description: "The International Space Station (ISS) as seen from a distance, showing its distinctive solar panels and modular structure. The ISS orbits Earth at an altitude of approximately 400 kilometers and serves as a platform for scientific research and international cooperation in space exploration.",
		ImageURL:    nasaUploads + "iss_external_view.jpg",
		Category:    "Satellites",
	},
	{
		Title:       "Saturn with Rings",
		Description: "A stunning view of Saturn captured by the Cassini spacecraft, showing the planet's distinctive ring system in beautiful detail. Saturn's rings are made up of countless particles of ice and rock, ranging in size from tiny grains to house-sized chunks. This image showcases the incredible beauty and complexity of our solar system.",
		ImageURL:    nasaUploads + "saturn_cassini.jpg",
		Category:    "Space",
	},
	{
		Title:       "Moon Surface - Apollo Mission",
		Description: "This iconic image from the Apollo missions shows the lunar surface in stunning detail. The cratered landscape tells the story of billions of years of impacts from asteroids and comets. The lack of atmosphere on the Moon means that these craters are preserved perfectly, providing a window into the early history of our solar system.",
		ImageURL:    nasaUploads + "apollo_moon_surface.jpg",
		Category:    "Moon",
	},
	{
		Title:       "Nebula - Star Formation Region",
		Description: "This colorful image shows a star-forming region in a distant nebula. The bright colors represent different gases heated by young, hot stars. These stellar nurseries are where new stars are born from clouds of gas and dust. The intricate structures are shaped by stellar winds and radiation from the newborn stars.",
		ImageURL:    nasaUploads + "nebula_star_formation.jpg",
		Category:    "Space",
	},
	{
		Title:       "Earth Aurora from Space",
		Description: "A breathtaking view of Earth's aurora as seen from the International Space Station. The green curtains of light are created when charged particles from the Sun interact with Earth's magnetic field and atmosphere. This natural light show is one of the most beautiful phenomena visible from space.",
		ImageURL:    nasaUploads + "earth_aurora_iss.jpg",
		Category:    "Earth",
	},
}

func init() {
	for i := range SampleImages {
		SampleImages[i].ThumbnailURL = SampleImages[i].ImageURL
		SampleImages[i].Source = "NASA"
	}
}

// GalleryStore is the subset of the gallery service seeding relies on.
type GalleryStore interface {
	ExistsByTitle(title string) (bool, error)
	Create(input service.GalleryInput) (*db.GalleryImage, error)
	Count() (int64, error)
}

// Result summarizes one seeding run.
type Result struct {
	Created int
	Skipped int
	Total   int64
}

// Run 写入 images 中尚不存在（按标题判断）的图片，并把进度写到 out。
func Run(store GalleryStore, images []service.GalleryInput, out io.Writer) (Result, error) {
	var result Result
	for _, image := range images {
		exists, err := store.ExistsByTitle(image.Title)
		if err != nil {
			return result, fmt.Errorf("check %q: %w", image.Title, err)
		}
		if exists {
			result.Skipped++
			fmt.Fprintf(out, "Image already exists: %s\n", image.Title)
			continue
		}

		if _, err := store.Create(image); err != nil {
			return result, fmt.Errorf("create %q: %w", image.Title, err)
		}
		result.Created++
		fmt.Fprintf(out, "Successfully created image: %s\n", image.Title)
	}

	total, err := store.Count()
	if err != nil {
		return result, err
	}
	result.Total = total

	fmt.Fprintf(out, "Created %d new images. Total images in gallery: %d\n", result.Created, result.Total)
	return result, nil
}
