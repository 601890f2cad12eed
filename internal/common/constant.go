package common

// UploadsURLPrefix is the public path under which stored images are served.
const UploadsURLPrefix = "/uploads"

// ImageFieldName is the multipart field carrying the product image.
const ImageFieldName = "image"
