package lunar

// years holds one record per lunar year from MinYear to MaxYear, indexed by
// year - MinYear. Columns: leap month, new year month, new year day, month
// length bits (most significant bit is the first month, 1 = 30 days).
var years = [...]YearRecord{
	{0, 2, 19, 0b0100101011100000},  // 1901
	{0, 2, 8, 0b1010010101110000},   // 1902
	{5, 1, 29, 0b0101001001101000},  // 1903
	{0, 2, 16, 0b1101001001100000},  // 1904
	{0, 2, 4, 0b1101100101010000},   // 1905
	{4, 1, 25, 0b0110101010101000},  // 1906
	{0, 2, 13, 0b0101011010100000},  // 1907
	{0, 2, 2, 0b1001101011010000},   // 1908
	{2, 1, 22, 0b0100101011101000},  // 1909
	{0, 2, 10, 0b0100101011100000},  // 1910
	{6, 1, 30, 0b1010010011011000},  // 1911
	{0, 2, 18, 0b1010010011010000},  // 1912
	{0, 2, 6, 0b1101001001010000},   // 1913
	{5, 1, 26, 0b1101010100101000},  // 1914
	{0, 2, 14, 0b1011010101000000},  // 1915
	{0, 2, 3, 0b1101011010100000},   // 1916
	{2, 1, 23, 0b1001011011010000},  // 1917
	{0, 2, 11, 0b1001010110110000},  // 1918
	{7, 2, 1, 0b0100100110111000},   // 1919
	{0, 2, 20, 0b0100100101110000},  // 1920
	{0, 2, 8, 0b1010010010110000},   // 1921
	{5, 1, 28, 0b1011001001011000},  // 1922
	{0, 2, 16, 0b0110101001010000},  // 1923
	{0, 2, 5, 0b0110110101000000},   // 1924
	{4, 1, 24, 0b1010110110101000},  // 1925
	{0, 2, 13, 0b0010101101100000},  // 1926
	{0, 2, 2, 0b1001010101110000},   // 1927
	{2, 1, 23, 0b0100100101111000},  // 1928
	{0, 2, 10, 0b0100100101110000},  // 1929
	{6, 1, 30, 0b0110010010110000},  // 1930
	{0, 2, 17, 0b1101010010100000},  // 1931
	{0, 2, 6, 0b1110101001010000},   // 1932
	{5, 1, 26, 0b0110110101001000},  // 1933
	{0, 2, 14, 0b0101101011010000},  // 1934
	{0, 2, 4, 0b0010101101100000},   // 1935
	{3, 1, 24, 0b1001001101110000},  // 1936
	{0, 2, 11, 0b1001001011100000},  // 1937
	{7, 1, 31, 0b1100100101101000},  // 1938
	{0, 2, 19, 0b1100100101010000},  // 1939
	{0, 2, 8, 0b1101010010100000},   // 1940
	{6, 1, 27, 0b1101101001010000},  // 1941
	{0, 2, 15, 0b1011010101010000},  // 1942
	{0, 2, 5, 0b0101011010100000},   // 1943
	{4, 1, 25, 0b1010101011011000},  // 1944
	{0, 2, 13, 0b0010010111010000},  // 1945
	{0, 2, 2, 0b1001001011010000},   // 1946
	{2, 1, 22, 0b1100100101011000},  // 1947
	{0, 2, 10, 0b1010100101010000},  // 1948
	{7, 1, 29, 0b1011010010101000},  // 1949
	{0, 2, 17, 0b0110110010100000},  // 1950
	{0, 2, 6, 0b1011010101010000},   // 1951
	{5, 1, 27, 0b0101010110101000},  // 1952
	{0, 2, 14, 0b0100110110100000},  // 1953
	{0, 2, 3, 0b1010010110110000},   // 1954
	{3, 1, 24, 0b0101001010111000},  // 1955
	{0, 2, 12, 0b0101001010110000},  // 1956
	{8, 1, 31, 0b1010100101010000},  // 1957
	{0, 2, 18, 0b1110100101010000},  // 1958
	{0, 2, 8, 0b0110101010100000},   // 1959
	{6, 1, 28, 0b1010110101010000},  // 1960
	{0, 2, 15, 0b1010101101010000},  // 1961
	{0, 2, 5, 0b0100101101100000},   // 1962
	{4, 1, 25, 0b1010010101110000},  // 1963
	{0, 2, 13, 0b1010010101110000},  // 1964
	{0, 2, 2, 0b0101001001100000},   // 1965
	{3, 1, 21, 0b1110100100110000},  // 1966
	{0, 2, 9, 0b1101100101010000},   // 1967
	{7, 1, 30, 0b0101101010101000},  // 1968
	{0, 2, 17, 0b0101011010100000},  // 1969
	{0, 2, 6, 0b1001011011010000},   // 1970
	{5, 1, 27, 0b0100101011101000},  // 1971
	{0, 2, 15, 0b0100101011010000},  // 1972
	{0, 2, 3, 0b1010010011010000},   // 1973
	{4, 1, 23, 0b1101001001101000},  // 1974
	{0, 2, 11, 0b1101001001010000},  // 1975
	{8, 1, 31, 0b1101010100101000},  // 1976
	{0, 2, 18, 0b1011010101000000},  // 1977
	{0, 2, 7, 0b1011011010100000},   // 1978
	{6, 1, 28, 0b1001011011010000},  // 1979
	{0, 2, 16, 0b1001010110110000},  // 1980
	{0, 2, 5, 0b0100100110110000},   // 1981
	{4, 1, 25, 0b1010010010111000},  // 1982
	{0, 2, 13, 0b1010010010110000},  // 1983
	{10, 2, 2, 0b1011001001011000},  // 1984
	{0, 2, 20, 0b0110101001010000},  // 1985
	{0, 2, 9, 0b0110110101000000},   // 1986
	{6, 1, 29, 0b1010110110100000},  // 1987
	{0, 2, 17, 0b1010101101100000},  // 1988
	{0, 2, 6, 0b1001010101110000},   // 1989
	{5, 1, 27, 0b0100100101111000},  // 1990
	{0, 2, 15, 0b0100100101110000},  // 1991
	{0, 2, 4, 0b0110010010110000},   // 1992
	{3, 1, 23, 0b0110101001010000},  // 1993
	{0, 2, 10, 0b1110101001010000},  // 1994
	{8, 1, 31, 0b0110101100101000},  // 1995
	{0, 2, 19, 0b0101101011000000},  // 1996
	{0, 2, 7, 0b1010101101100000},   // 1997
	{5, 1, 28, 0b1001001101101000},  // 1998
	{0, 2, 16, 0b1001001011100000},  // 1999
	{0, 2, 5, 0b1100100101100000},   // 2000
	{4, 1, 24, 0b1101010010101000},  // 2001
	{0, 2, 12, 0b1101010010100000},  // 2002
	{0, 2, 1, 0b1101101001010000},   // 2003
	{2, 1, 22, 0b0101101010101000},  // 2004
	{0, 2, 9, 0b0101011010100000},   // 2005
	{7, 1, 29, 0b1010101011011000},  // 2006
	{0, 2, 18, 0b0010010111010000},  // 2007
	{0, 2, 7, 0b1001001011010000},   // 2008
	{5, 1, 26, 0b1100100101011000},  // 2009
	{0, 2, 14, 0b1010100101010000},  // 2010
	{0, 2, 3, 0b1011010010100000},   // 2011
	{4, 1, 23, 0b1011010101010000},  // 2012
	{0, 2, 10, 0b1010110101010000},  // 2013
	{9, 1, 31, 0b0101010110101000},  // 2014
	{0, 2, 19, 0b0100101110100000},  // 2015
	{0, 2, 8, 0b1010010110110000},   // 2016
	{6, 1, 28, 0b0101001010111000},  // 2017
	{0, 2, 16, 0b0101001010110000},  // 2018
	{0, 2, 5, 0b1010100100110000},   // 2019
	{4, 1, 25, 0b0111010010101000},  // 2020
	{0, 2, 12, 0b0110101010100000},  // 2021
	{0, 2, 1, 0b1010110101010000},   // 2022
	{2, 1, 22, 0b0100110110101000},  // 2023
	{0, 2, 10, 0b0100101101100000},  // 2024
	{6, 1, 29, 0b1010010101110000},  // 2025
	{0, 2, 17, 0b1010010011100000},  // 2026
	{0, 2, 6, 0b1101001001100000},   // 2027
	{5, 1, 26, 0b1110100100110000},  // 2028
	{0, 2, 13, 0b1101010100110000},  // 2029
	{0, 2, 3, 0b0101101010100000},   // 2030
	{3, 1, 23, 0b0110101101010000},  // 2031
	{0, 2, 11, 0b1001011011010000},  // 2032
	{11, 1, 31, 0b0100101011101000}, // 2033
	{0, 2, 19, 0b0100101011010000},  // 2034
	{0, 2, 8, 0b1010010011010000},   // 2035
	{6, 1, 28, 0b1101001001011000},  // 2036
	{0, 2, 15, 0b1101001001010000},  // 2037
	{0, 2, 4, 0b1101010100100000},   // 2038
	{5, 1, 24, 0b1101101010100000},  // 2039
	{0, 2, 12, 0b1011010110100000},  // 2040
	{0, 2, 1, 0b0101011011010000},   // 2041
	{2, 1, 22, 0b0100101011011000},  // 2042
	{0, 2, 10, 0b0100100110110000},  // 2043
	{7, 1, 30, 0b1010010010111000},  // 2044
	{0, 2, 17, 0b1010010010110000},  // 2045
	{0, 2, 6, 0b1010101001010000},   // 2046
	{5, 1, 26, 0b1011010100101000},  // 2047
	{0, 2, 14, 0b0110110100100000},  // 2048
	{0, 2, 2, 0b1010110110100000},   // 2049
	{3, 1, 23, 0b0101010110110000},  // 2050
	{0, 2, 11, 0b1001001101110000},  // 2051
	{8, 2, 1, 0b0100100101111000},   // 2052
	{0, 2, 19, 0b0100100101110000},  // 2053
	{0, 2, 8, 0b0110010010110000},   // 2054
	{6, 1, 28, 0b0110101001010000},  // 2055
	{0, 2, 15, 0b1110101001010000},  // 2056
	{0, 2, 4, 0b0110101010100000},   // 2057
	{4, 1, 24, 0b1010101101100000},  // 2058
	{0, 2, 12, 0b1010101011100000},  // 2059
	{0, 2, 2, 0b1001001011100000},   // 2060
	{3, 1, 21, 0b1100100101110000},  // 2061
	{0, 2, 9, 0b1100100101100000},   // 2062
	{7, 1, 29, 0b1101010010101000},  // 2063
	{0, 2, 17, 0b1101010010100000},  // 2064
	{0, 2, 5, 0b1101101001010000},   // 2065
	{5, 1, 26, 0b0101101010101000},  // 2066
	{0, 2, 14, 0b0101011010100000},  // 2067
	{0, 2, 3, 0b1010011011010000},   // 2068
	{4, 1, 23, 0b0101001011101000},  // 2069
	{0, 2, 11, 0b0101001011010000},  // 2070
	{8, 1, 31, 0b1010100101011000},  // 2071
	{0, 2, 19, 0b1010100101010000},  // 2072
	{0, 2, 7, 0b1011010010100000},   // 2073
	{6, 1, 27, 0b1011010101010000},  // 2074
	{0, 2, 15, 0b1010110101010000},  // 2075
	{0, 2, 5, 0b0101010110100000},   // 2076
	{4, 1, 24, 0b1010010111010000},  // 2077
	{0, 2, 12, 0b1010010110110000},  // 2078
	{0, 2, 2, 0b0101001010110000},   // 2079
	{3, 1, 22, 0b1010100100111000},  // 2080
	{0, 2, 9, 0b0110100100110000},   // 2081
	{7, 1, 29, 0b0111001010011000},  // 2082
	{0, 2, 17, 0b0110101010100000},  // 2083
	{0, 2, 6, 0b1010110101010000},   // 2084
	{5, 1, 26, 0b0100110110101000},  // 2085
	{0, 2, 14, 0b0100101101100000},  // 2086
	{0, 2, 3, 0b1010010101110000},   // 2087
	{4, 1, 24, 0b0101001001110000},  // 2088
	{0, 2, 10, 0b1101000101100000},  // 2089
	{8, 1, 30, 0b1110100100110000},  // 2090
	{0, 2, 18, 0b1101010100100000},  // 2091
	{0, 2, 7, 0b1101101010100000},   // 2092
	{6, 1, 27, 0b0110101101010000},  // 2093
	{0, 2, 15, 0b0101011011010000},  // 2094
	{0, 2, 5, 0b0100101011100000},   // 2095
	{4, 1, 25, 0b1010010011101000},  // 2096
	{0, 2, 12, 0b1010001011010000},  // 2097
	{0, 2, 1, 0b1101000101010000},   // 2098
	{2, 1, 21, 0b1101100100101000},  // 2099
	{0, 2, 9, 0b1101010100100000},   // 2100
}
