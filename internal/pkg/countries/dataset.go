package countries

import "github.com/atlasworks/travelatlas/internal/core/domain"

// dataset is the embedded atlas: ISO code, canonical name, common aliases,
// centroid, and suggested globe zoom. Aliases cover endonyms, former names,
// and frequent colloquial forms seen in chat input.
var dataset = []domain.Country{
	{Code: "ar", Name: "Argentina", Centroid: domain.GeoPoint{Lat: -34.6037, Lon: -58.3816}, Zoom: 3.2},
	{Code: "au", Name: "Australia", Aliases: []string{"oz", "down under"}, Centroid: domain.GeoPoint{Lat: -25.2744, Lon: 133.7751}, Zoom: 3.0},
	{Code: "at", Name: "Austria", Aliases: []string{"osterreich"}, Centroid: domain.GeoPoint{Lat: 47.5162, Lon: 14.5501}, Zoom: 5.0},
	{Code: "be", Name: "Belgium", Aliases: []string{"belgique", "belgie"}, Centroid: domain.GeoPoint{Lat: 50.5039, Lon: 4.4699}, Zoom: 5.5},
	{Code: "br", Name: "Brazil", Aliases: []string{"brasil"}, Centroid: domain.GeoPoint{Lat: -14.2350, Lon: -51.9253}, Zoom: 3.0},
	{Code: "ca", Name: "Canada", Centroid: domain.GeoPoint{Lat: 56.1304, Lon: -106.3468}, Zoom: 2.8},
	{Code: "cl", Name: "Chile", Centroid: domain.GeoPoint{Lat: -35.6751, Lon: -71.5430}, Zoom: 3.4},
	{Code: "cn", Name: "China", Aliases: []string{"prc", "zhongguo"}, Centroid: domain.GeoPoint{Lat: 35.8617, Lon: 104.1954}, Zoom: 3.0},
	{Code: "co", Name: "Colombia", Centroid: domain.GeoPoint{Lat: 4.5709, Lon: -74.2973}, Zoom: 4.2},
	{Code: "hr", Name: "Croatia", Aliases: []string{"hrvatska"}, Centroid: domain.GeoPoint{Lat: 45.1000, Lon: 15.2000}, Zoom: 5.2},
	{Code: "cz", Name: "Czechia", Aliases: []string{"czech republic", "cesko"}, Centroid: domain.GeoPoint{Lat: 49.8175, Lon: 15.4730}, Zoom: 5.2},
	{Code: "dk", Name: "Denmark", Aliases: []string{"danmark"}, Centroid: domain.GeoPoint{Lat: 56.2639, Lon: 9.5018}, Zoom: 5.0},
	{Code: "eg", Name: "Egypt", Aliases: []string{"misr"}, Centroid: domain.GeoPoint{Lat: 26.8206, Lon: 30.8025}, Zoom: 4.0},
	{Code: "fi", Name: "Finland", Aliases: []string{"suomi"}, Centroid: domain.GeoPoint{Lat: 61.9241, Lon: 25.7482}, Zoom: 4.2},
	{Code: "fr", Name: "France", Centroid: domain.GeoPoint{Lat: 46.2276, Lon: 2.2137}, Zoom: 4.6},
	{Code: "de", Name: "Germany", Aliases: []string{"deutschland"}, Centroid: domain.GeoPoint{Lat: 51.1657, Lon: 10.4515}, Zoom: 4.6},
	{Code: "gr", Name: "Greece", Aliases: []string{"hellas", "ellada"}, Centroid: domain.GeoPoint{Lat: 39.0742, Lon: 21.8243}, Zoom: 5.0},
	{Code: "hu", Name: "Hungary", Aliases: []string{"magyarorszag"}, Centroid: domain.GeoPoint{Lat: 47.1625, Lon: 19.5033}, Zoom: 5.2},
	{Code: "is", Name: "Iceland", Aliases: []string{"island"}, Centroid: domain.GeoPoint{Lat: 64.9631, Lon: -19.0208}, Zoom: 4.6},
	{Code: "in", Name: "India", Aliases: []string{"bharat"}, Centroid: domain.GeoPoint{Lat: 20.5937, Lon: 78.9629}, Zoom: 3.4},
	{Code: "id", Name: "Indonesia", Centroid: domain.GeoPoint{Lat: -0.7893, Lon: 113.9213}, Zoom: 3.2},
	{Code: "ie", Name: "Ireland", Aliases: []string{"eire"}, Centroid: domain.GeoPoint{Lat: 53.4129, Lon: -8.2439}, Zoom: 5.0},
	{Code: "il", Name: "Israel", Centroid: domain.GeoPoint{Lat: 31.0461, Lon: 34.8516}, Zoom: 5.6},
	{Code: "it", Name: "Italy", Aliases: []string{"italia"}, Centroid: domain.GeoPoint{Lat: 41.8719, Lon: 12.5674}, Zoom: 4.6},
	{Code: "jp", Name: "Japan", Aliases: []string{"nippon", "nihon"}, Centroid: domain.GeoPoint{Lat: 36.2048, Lon: 138.2529}, Zoom: 4.2},
	{Code: "ke", Name: "Kenya", Centroid: domain.GeoPoint{Lat: -0.0236, Lon: 37.9062}, Zoom: 4.6},
	{Code: "mx", Name: "Mexico", Aliases: []string{"mejico"}, Centroid: domain.GeoPoint{Lat: 23.6345, Lon: -102.5528}, Zoom: 3.6},
	{Code: "ma", Name: "Morocco", Aliases: []string{"maroc"}, Centroid: domain.GeoPoint{Lat: 31.7917, Lon: -7.0926}, Zoom: 4.4},
	{Code: "nl", Name: "Netherlands", Aliases: []string{"holland", "nederland"}, Centroid: domain.GeoPoint{Lat: 52.1326, Lon: 5.2913}, Zoom: 5.4},
	{Code: "nz", Name: "New Zealand", Aliases: []string{"aotearoa"}, Centroid: domain.GeoPoint{Lat: -40.9006, Lon: 174.8860}, Zoom: 4.2},
	{Code: "no", Name: "Norway", Aliases: []string{"norge"}, Centroid: domain.GeoPoint{Lat: 60.4720, Lon: 8.4689}, Zoom: 4.0},
	{Code: "pe", Name: "Peru", Centroid: domain.GeoPoint{Lat: -9.1900, Lon: -75.0152}, Zoom: 4.0},
	{Code: "ph", Name: "Philippines", Aliases: []string{"pilipinas"}, Centroid: domain.GeoPoint{Lat: 12.8797, Lon: 121.7740}, Zoom: 4.2},
	{Code: "pl", Name: "Poland", Aliases: []string{"polska"}, Centroid: domain.GeoPoint{Lat: 51.9194, Lon: 19.1451}, Zoom: 4.8},
	{Code: "pt", Name: "Portugal", Centroid: domain.GeoPoint{Lat: 39.3999, Lon: -8.2245}, Zoom: 5.2},
	{Code: "ro", Name: "Romania", Centroid: domain.GeoPoint{Lat: 45.9432, Lon: 24.9668}, Zoom: 4.8},
	{Code: "sg", Name: "Singapore", Centroid: domain.GeoPoint{Lat: 1.3521, Lon: 103.8198}, Zoom: 8.0},
	{Code: "za", Name: "South Africa", Centroid: domain.GeoPoint{Lat: -30.5595, Lon: 22.9375}, Zoom: 4.0},
	{Code: "kr", Name: "South Korea", Aliases: []string{"korea", "republic of korea", "hanguk"}, Centroid: domain.GeoPoint{Lat: 35.9078, Lon: 127.7669}, Zoom: 5.0},
	{Code: "es", Name: "Spain", Aliases: []string{"espana"}, Centroid: domain.GeoPoint{Lat: 40.4637, Lon: -3.7492}, Zoom: 4.6},
	{Code: "se", Name: "Sweden", Aliases: []string{"sverige"}, Centroid: domain.GeoPoint{Lat: 60.1282, Lon: 18.6435}, Zoom: 4.0},
	{Code: "ch", Name: "Switzerland", Aliases: []string{"schweiz", "suisse", "svizzera"}, Centroid: domain.GeoPoint{Lat: 46.8182, Lon: 8.2275}, Zoom: 5.6},
	{Code: "th", Name: "Thailand", Aliases: []string{"siam"}, Centroid: domain.GeoPoint{Lat: 15.8700, Lon: 100.9925}, Zoom: 4.4},
	{Code: "tr", Name: "Turkey", Aliases: []string{"turkiye"}, Centroid: domain.GeoPoint{Lat: 38.9637, Lon: 35.2433}, Zoom: 4.2},
	{Code: "ae", Name: "United Arab Emirates", Aliases: []string{"uae", "emirates"}, Centroid: domain.GeoPoint{Lat: 23.4241, Lon: 53.8478}, Zoom: 5.2},
	{Code: "gb", Name: "United Kingdom", Aliases: []string{"uk", "great britain", "britain", "england"}, Centroid: domain.GeoPoint{Lat: 55.3781, Lon: -3.4360}, Zoom: 4.4},
	{Code: "us", Name: "United States", Aliases: []string{"usa", "america", "united states of america"}, Centroid: domain.GeoPoint{Lat: 37.0902, Lon: -95.7129}, Zoom: 3.0},
	{Code: "vn", Name: "Vietnam", Aliases: []string{"viet nam"}, Centroid: domain.GeoPoint{Lat: 14.0583, Lon: 108.2772}, Zoom: 4.2},
}
